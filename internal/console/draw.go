package console

import (
	"fmt"
	"strings"

	"dungeon-crawler/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const helpLine = "n next  s search  t take all  1-9 item  b+1-9 hit chest  a attack  e wait  i/tab cursor  u use  w equip  x sell  W/H/C unequip  m map  r restart  q quit"

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMsg    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func (c *Console) draw() {
	c.screen.Clear()
	width, height := c.screen.Size()
	y := 0

	if c.ending != nil {
		y = c.drawEnding(y)
	} else if info, err := c.store.GetGameInfo(c.id); err == nil {
		y = c.drawRoom(y, info)
		y = c.drawVitals(y+1, info)
		y = c.drawInventory(y+1, info.Inventory)
		if c.showMap {
			if entries, err := c.store.ViewMap(c.id); err == nil {
				y = c.drawMap(y+1, entries)
			}
		}
	}

	// Message log at the bottom, above the help line.
	logTop := max(y+1, height-8)
	c.hline(logTop, width)
	rows := max(0, height-logTop-2)
	shown := c.messages[max(0, len(c.messages)-rows):]
	for i, msg := range shown {
		c.text(0, logTop+1+i, msg, styleMsg)
	}
	c.text(0, height-1, helpLine, styleDim)
	c.screen.Show()
}

func (c *Console) drawRoom(y int, info game.GameInfo) int {
	r := info.Room
	c.text(0, y, fmt.Sprintf("Room %d of the dungeon: %s", r.ID, r.Name), styleTitle)
	y++
	c.text(0, y, r.Description, styleText)
	y++
	if r.Enemy != nil {
		e := r.Enemy
		c.text(0, y, fmt.Sprintf("%s  HP %d/%d  dmg %d  block %d", e.Name, e.Health, e.MaxHealth, e.Damage, e.Block), styleEnemy)
		y++
	}
	if !r.Searched {
		c.text(0, y, "(not searched)", styleDim)
		return y + 1
	}
	if len(r.Items) == 0 {
		c.text(0, y, "Nothing here.", styleDim)
		return y + 1
	}
	shop := r.Kind == "shop"
	for i, it := range r.Items {
		if i >= 9 {
			break
		}
		c.text(2, y, fmt.Sprintf("%d) %s", i+1, describe(it, shop)), styleText)
		y++
	}
	return y
}

func (c *Console) drawVitals(y int, info game.GameInfo) int {
	c.text(0, y, fmt.Sprintf("HP %d/%d  Coins %d  Keys %d  Room %d", info.Health, info.MaxHealth, info.Coins, info.Keys, info.Depth), styleTitle)
	y++
	var parts []string
	for _, e := range info.Equipment {
		parts = append(parts, gear(e))
	}
	c.text(0, y, "Wearing: "+strings.Join(parts, ", "), styleText)
	return y + 1
}

func (c *Console) drawInventory(y int, inv []game.ItemView) int {
	c.text(0, y, "Pack:", styleTitle)
	y++
	if len(inv) == 0 {
		c.text(2, y, "empty", styleDim)
		return y + 1
	}
	for i, it := range inv {
		style := styleText
		if i == c.cursor {
			style = styleCursor
		}
		c.text(2, y, describe(it, false), style)
		y++
	}
	return y
}

func (c *Console) drawMap(y int, entries []game.MapEntry) int {
	c.text(0, y, "Map:", styleTitle)
	y++
	var b strings.Builder
	for _, e := range entries {
		switch {
		case e.Current:
			b.WriteString("[@]")
		case e.Discovered:
			b.WriteString("[" + e.Kind[:1] + "]")
		default:
			b.WriteString("[?]")
		}
	}
	c.text(0, y, b.String(), styleText)
	return y + 1
}

func (c *Console) drawEnding(y int) int {
	s := c.ending.Stats
	title := "You died."
	if c.ending.Result == game.ResultWin {
		title = "You escaped the dungeon!"
	}
	c.text(0, y, title, styleTitle)
	lines := []string{
		fmt.Sprintf("Rooms cleared: %d of %d", s.Depth, s.Rooms),
		fmt.Sprintf("Enemies slain: %d", s.TotalKills),
		fmt.Sprintf("Damage dealt: %d  taken: %d", s.DamageDealt, s.DamageTaken),
		fmt.Sprintf("Coins: %d  Items used: %d  broken: %d", s.Coins, s.ItemsUsed, s.ItemsBroken),
	}
	if s.CauseOfDeath != "" {
		lines = append(lines, "Killed by: "+s.CauseOfDeath)
	}
	for i, l := range lines {
		c.text(2, y+1+i, l, styleText)
	}
	return y + 1 + len(lines)
}

func describe(it game.ItemView, price bool) string {
	s := it.Name
	switch {
	case it.Amount > 0:
		s = fmt.Sprintf("%s (%d)", s, it.Amount)
	case it.Equipment != nil:
		s = gear(*it.Equipment)
	case it.Heal != nil && it.Heal.Random:
		s += " (?)"
	case it.Heal != nil:
		s = fmt.Sprintf("%s (+%d hp, +%d max)", s, it.Heal.Health, it.Heal.MaxHealth)
	case it.Chest != nil:
		switch {
		case it.Chest.Locked:
			s += " (locked)"
		case it.Chest.Closed:
			s += " (closed)"
		default:
			s += fmt.Sprintf(" (open, %d inside)", len(it.Chest.Items))
		}
	}
	if price && it.Cost > 0 {
		s = fmt.Sprintf("%s - %d coins", s, it.Cost)
	}
	return s
}

func gear(e game.EquipmentView) string {
	if e.Indestructible {
		return fmt.Sprintf("%s (%d atk)", e.Name, e.Attack)
	}
	if e.Slot == "weapon" {
		return fmt.Sprintf("%s (%d atk, %d/%d)", e.Name, e.Attack, e.Durability, e.MaxDurability)
	}
	return fmt.Sprintf("%s (%d block, %d/%d)", e.Name, e.Block, e.Durability, e.MaxDurability)
}

func (c *Console) hline(y, width int) {
	for x := 0; x < width; x++ {
		c.screen.SetContent(x, y, '─', nil, styleDim)
	}
}

// text draws s at (x, y), advancing by each rune's display width.
func (c *Console) text(x, y int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		c.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
