// Package console plays a single local session in the terminal.
package console

import (
	"fmt"
	"log/slog"

	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

const maxMessages = 50

// Console drives one session of a store from a tcell screen.
type Console struct {
	screen tcell.Screen
	store  *session.Store
	id     uuid.UUID
	logger *slog.Logger

	messages []string
	cursor   int  // inventory selection
	hitting  bool // next digit hits a chest
	showMap  bool
	ending   *game.Ending
}

// New creates and starts a session in store.
func New(screen tcell.Screen, store *session.Store, logger *slog.Logger) (*Console, error) {
	if logger == nil {
		logger = slog.Default()
	}
	id, err := store.Create()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	c := &Console{screen: screen, store: store, id: id, logger: logger}
	if err := c.restart(); err != nil {
		return nil, err
	}
	return c, nil
}

// Session returns the id of the console's session.
func (c *Console) Session() uuid.UUID { return c.id }

// Run draws and handles keys until the player quits.
func (c *Console) Run() {
	for {
		c.draw()
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			if !c.handleKey(ev) {
				return
			}
		case nil:
			return
		}
	}
}

func (c *Console) restart() error {
	if err := c.store.StartSession(c.id); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	c.ending = nil
	c.cursor = 0
	c.hitting = false
	c.showMap = false
	c.say("You step into the dungeon.")
	return nil
}

func (c *Console) say(format string, args ...any) {
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
	if len(c.messages) > maxMessages {
		c.messages = c.messages[len(c.messages)-maxMessages:]
	}
}

// fail reports a refused action.
func (c *Console) fail(err error) bool {
	if err == nil {
		return false
	}
	c.say("! %s", err)
	return true
}

func (c *Console) end(e *game.Ending) {
	if e == nil {
		return
	}
	c.ending = e
	if e.Result == game.ResultWin {
		c.say("You found the exit after %d rooms.", e.Stats.Depth)
		return
	}
	c.say("You died in room %d. Cause: %s.", e.Stats.Depth, e.Stats.CauseOfDeath)
}

// handleKey performs the action of a key. It reports false on quit.
func (c *Console) handleKey(ev *tcell.EventKey) bool {
	action, index := keyToAction(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionRestart:
		if err := c.restart(); err != nil {
			c.logger.Error("restart", "error", err)
			return false
		}
		return true
	case ActionNone:
		return true
	}
	if c.ending != nil {
		c.say("The run is over. Press r to play again or q to quit.")
		return true
	}
	if action != ActionSelect {
		c.hitting = false
	}

	switch action {
	case ActionNext:
		end, err := c.store.GoNextRoom(c.id)
		if c.fail(err) {
			break
		}
		c.showMap = false
		if room, err := c.store.GetCurrentRoom(c.id); err == nil {
			c.say("You enter %s.", room.Name)
			if room.Enemy != nil {
				c.say("%s blocks the way!", room.Enemy.Name)
			}
		}
		c.end(end)
	case ActionSearch:
		items, err := c.store.SearchCurrentRoom(c.id)
		if !c.fail(err) {
			c.say("You search the room and find %d thing(s).", len(items))
		}
	case ActionTakeAll:
		if !c.fail(c.store.TakeAllItems(c.id)) {
			c.say("You take everything you can carry.")
		}
	case ActionAttack:
		log, end, err := c.store.PlayerAttack(c.id)
		if !c.fail(err) {
			c.sayBattle(log)
			c.end(end)
		}
	case ActionWait:
		log, end, err := c.store.EnemyAttack(c.id)
		if !c.fail(err) {
			c.sayBattle(log)
			c.end(end)
		}
	case ActionHit:
		c.hitting = true
		c.say("Hit which chest? (1-9)")
	case ActionSelect:
		c.selectItem(index)
	case ActionCycle:
		inv, err := c.store.GetInventory(c.id)
		if !c.fail(err) && len(inv) > 0 {
			c.cursor = (c.cursor + 1) % len(inv)
		}
	case ActionUse:
		if it, ok := c.selected(); ok {
			end, err := c.store.UseItem(c.id, it.ID)
			if !c.fail(err) {
				c.say("You use the %s.", it.Name)
				c.end(end)
			}
		}
	case ActionEquip:
		if it, ok := c.selected(); ok {
			if _, err := c.store.EquipItem(c.id, it.ID); !c.fail(err) {
				c.say("You equip the %s.", it.Name)
			}
		}
	case ActionSell:
		if it, ok := c.selected(); ok {
			if !c.fail(c.store.SellItem(c.id, it.ID)) {
				c.say("You sell the %s for %d coins.", it.Name, it.Cost)
			}
		}
	case ActionUnequipWeapon:
		if _, err := c.store.UnequipWeapon(c.id); !c.fail(err) {
			c.say("You put your weapon away.")
		}
	case ActionUnequipHelm:
		if _, err := c.store.UnequipHelm(c.id); !c.fail(err) {
			c.say("You take off your helm.")
		}
	case ActionUnequipChestplate:
		if _, err := c.store.UnequipChestplate(c.id); !c.fail(err) {
			c.say("You take off your chestplate.")
		}
	case ActionMap:
		if _, err := c.store.ViewMap(c.id); !c.fail(err) {
			c.showMap = !c.showMap
		}
	}
	if inv, err := c.store.GetInventory(c.id); err == nil && c.cursor >= len(inv) {
		c.cursor = max(0, len(inv)-1)
	}
	return true
}

// selected returns the inventory item under the cursor.
func (c *Console) selected() (game.ItemView, bool) {
	inv, err := c.store.GetInventory(c.id)
	if c.fail(err) {
		return game.ItemView{}, false
	}
	if c.cursor >= len(inv) {
		c.say("Your pack is empty.")
		return game.ItemView{}, false
	}
	return inv[c.cursor], true
}

// selectItem acts on the n-th item of the searched room: buy in a shop,
// work a chest open step by step, otherwise pick it up.
func (c *Console) selectItem(n int) {
	hitting := c.hitting
	c.hitting = false
	room, err := c.store.GetCurrentRoom(c.id)
	if c.fail(err) {
		return
	}
	if !room.Searched {
		c.say("Search the room first (s).")
		return
	}
	if n >= len(room.Items) {
		c.say("There is no item %d.", n+1)
		return
	}
	it := room.Items[n]

	if hitting {
		log, end, err := c.store.HitChest(c.id, it.ID)
		if !c.fail(err) {
			c.sayBattle(log)
			c.end(end)
		}
		return
	}

	switch {
	case room.Kind == "shop":
		if !c.fail(c.store.BuyItem(c.id, it.ID)) {
			c.say("You buy the %s for %d coins.", it.Name, it.Cost)
		}
	case it.Chest != nil:
		c.workChest(it.ID)
	default:
		if !c.fail(c.store.TakeItem(c.id, it.ID)) {
			c.say("You take the %s.", it.Name)
		}
	}
}

func (c *Console) workChest(id int) {
	state, err := c.store.GetChestState(c.id, id)
	if c.fail(err) {
		return
	}
	switch {
	case state.Locked:
		if !c.fail(c.store.UnlockChest(c.id, id)) {
			c.say("The lock clicks open.")
		}
	case state.Closed:
		end, err := c.store.OpenChest(c.id, id)
		if c.fail(err) {
			return
		}
		if end != nil {
			c.say("The chest bites back. It was a Mimic!")
			c.end(end)
			return
		}
		items, err := c.store.SearchChest(c.id, id)
		if c.fail(err) {
			return
		}
		c.say("The chest opens. It holds %d thing(s).", len(items))
	default:
		if !c.fail(c.store.TakeAllFromChest(c.id, id)) {
			c.say("You empty the chest.")
		}
	}
}

func (c *Console) sayBattle(log game.BattleLog) {
	if log.Note != "" {
		c.say("%s", log.Note)
		return
	}
	if log.SelfHarm > 0 {
		c.say("You hurt your hands for %d.", log.SelfHarm)
	}
	switch {
	case log.Bypassed:
		c.say("%s passes through your armor and deals %d.", log.Attacker, log.Damage)
	case log.Blocked > 0:
		c.say("%s hits %s for %d (%d blocked).", log.Attacker, log.Target, log.Damage, log.Blocked)
	default:
		c.say("%s hits %s for %d.", log.Attacker, log.Target, log.Damage)
	}
	for _, name := range log.Broken {
		c.say("Your %s breaks!", name)
	}
	if log.Killed {
		c.say("%s is defeated.", log.Target)
	}
}
