package session

import (
	"dungeon-crawler/internal/game"

	"github.com/google/uuid"
)

// The verbs mirror game.Game, keyed by session id. Verbs that can end a run
// record the ending before returning it.

// StartSession starts (or restarts) the run of a session.
func (s *Store) StartSession(id uuid.UUID) error {
	err := s.with(id, "StartSession", func(g *game.Game) error {
		g.StartSession()
		return nil
	})
	if err == nil {
		s.logger.Info("session started", "session", id)
	}
	return err
}

func (s *Store) GetCurrentRoom(id uuid.UUID) (v game.RoomView, err error) {
	err = s.with(id, "GetCurrentRoom", func(g *game.Game) error {
		v, err = g.GetCurrentRoom()
		return err
	})
	return v, err
}

func (s *Store) GetRoom(id uuid.UUID, roomID int) (v game.RoomView, err error) {
	err = s.with(id, "GetRoom", func(g *game.Game) error {
		v, err = g.GetRoom(roomID)
		return err
	})
	return v, err
}

func (s *Store) ViewMap(id uuid.UUID) (v []game.MapEntry, err error) {
	err = s.with(id, "ViewMap", func(g *game.Game) error {
		v, err = g.ViewMap()
		return err
	})
	return v, err
}

func (s *Store) GoNextRoom(id uuid.UUID) (end *game.Ending, err error) {
	err = s.with(id, "GoNextRoom", func(g *game.Game) error {
		end, err = g.GoNextRoom()
		return err
	})
	s.ended(id, end)
	return end, err
}

func (s *Store) SearchCurrentRoom(id uuid.UUID) (v []game.ItemView, err error) {
	err = s.with(id, "SearchCurrentRoom", func(g *game.Game) error {
		v, err = g.SearchCurrentRoom()
		return err
	})
	return v, err
}

func (s *Store) TakeItem(id uuid.UUID, itemID int) error {
	return s.with(id, "TakeItem", func(g *game.Game) error { return g.TakeItem(itemID) })
}

func (s *Store) TakeAllItems(id uuid.UUID) error {
	return s.with(id, "TakeAllItems", func(g *game.Game) error { return g.TakeAllItems() })
}

func (s *Store) BuyItem(id uuid.UUID, itemID int) error {
	return s.with(id, "BuyItem", func(g *game.Game) error { return g.BuyItem(itemID) })
}

func (s *Store) SellItem(id uuid.UUID, itemID int) error {
	return s.with(id, "SellItem", func(g *game.Game) error { return g.SellItem(itemID) })
}

func (s *Store) GetChestState(id uuid.UUID, chestID int) (v game.ChestView, err error) {
	err = s.with(id, "GetChestState", func(g *game.Game) error {
		v, err = g.GetChestState(chestID)
		return err
	})
	return v, err
}

func (s *Store) UnlockChest(id uuid.UUID, chestID int) error {
	return s.with(id, "UnlockChest", func(g *game.Game) error { return g.UnlockChest(chestID) })
}

func (s *Store) OpenChest(id uuid.UUID, chestID int) (end *game.Ending, err error) {
	err = s.with(id, "OpenChest", func(g *game.Game) error {
		end, err = g.OpenChest(chestID)
		return err
	})
	s.ended(id, end)
	return end, err
}

func (s *Store) HitChest(id uuid.UUID, chestID int) (log game.BattleLog, end *game.Ending, err error) {
	err = s.with(id, "HitChest", func(g *game.Game) error {
		log, end, err = g.HitChest(chestID)
		return err
	})
	s.ended(id, end)
	return log, end, err
}

func (s *Store) SearchChest(id uuid.UUID, chestID int) (v []game.ItemView, err error) {
	err = s.with(id, "SearchChest", func(g *game.Game) error {
		v, err = g.SearchChest(chestID)
		return err
	})
	return v, err
}

func (s *Store) TakeItemFromChest(id uuid.UUID, chestID, itemID int) error {
	return s.with(id, "TakeItemFromChest", func(g *game.Game) error { return g.TakeItemFromChest(chestID, itemID) })
}

func (s *Store) TakeAllFromChest(id uuid.UUID, chestID int) error {
	return s.with(id, "TakeAllFromChest", func(g *game.Game) error { return g.TakeAllFromChest(chestID) })
}

func (s *Store) GetEnemy(id uuid.UUID) (v game.EnemyView, err error) {
	err = s.with(id, "GetEnemy", func(g *game.Game) error {
		v, err = g.GetEnemy()
		return err
	})
	return v, err
}

func (s *Store) PlayerAttack(id uuid.UUID) (log game.BattleLog, end *game.Ending, err error) {
	err = s.with(id, "PlayerAttack", func(g *game.Game) error {
		log, end, err = g.PlayerAttack()
		return err
	})
	s.ended(id, end)
	return log, end, err
}

func (s *Store) EnemyAttack(id uuid.UUID) (log game.BattleLog, end *game.Ending, err error) {
	err = s.with(id, "EnemyAttack", func(g *game.Game) error {
		log, end, err = g.EnemyAttack()
		return err
	})
	s.ended(id, end)
	return log, end, err
}

func (s *Store) EquipItem(id uuid.UUID, itemID int) (v []game.EquipmentView, err error) {
	err = s.with(id, "EquipItem", func(g *game.Game) error {
		v, err = g.EquipItem(itemID)
		return err
	})
	return v, err
}

func (s *Store) UnequipWeapon(id uuid.UUID) (v []game.EquipmentView, err error) {
	err = s.with(id, "UnequipWeapon", func(g *game.Game) error {
		v, err = g.UnequipWeapon()
		return err
	})
	return v, err
}

func (s *Store) UnequipHelm(id uuid.UUID) (v []game.EquipmentView, err error) {
	err = s.with(id, "UnequipHelm", func(g *game.Game) error {
		v, err = g.UnequipHelm()
		return err
	})
	return v, err
}

func (s *Store) UnequipChestplate(id uuid.UUID) (v []game.EquipmentView, err error) {
	err = s.with(id, "UnequipChestplate", func(g *game.Game) error {
		v, err = g.UnequipChestplate()
		return err
	})
	return v, err
}

func (s *Store) UseItem(id uuid.UUID, itemID int) (end *game.Ending, err error) {
	err = s.with(id, "UseItem", func(g *game.Game) error {
		end, err = g.UseItem(itemID)
		return err
	})
	s.ended(id, end)
	return end, err
}

func (s *Store) GetInventory(id uuid.UUID) (v []game.ItemView, err error) {
	err = s.with(id, "GetInventory", func(g *game.Game) error {
		v, err = g.GetInventory()
		return err
	})
	return v, err
}

func (s *Store) GetGameInfo(id uuid.UUID) (v game.GameInfo, err error) {
	err = s.with(id, "GetGameInfo", func(g *game.Game) error {
		v, err = g.GetGameInfo()
		return err
	})
	return v, err
}
