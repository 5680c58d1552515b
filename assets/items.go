package assets

import "dungeon-crawler/internal/component"

// Label is a display name with its one-line description.
type Label struct {
	Name        string
	Description string
}

// itemLabels names every item kind; equipment kinds are refined by tier.
var itemLabels = map[component.ItemKind]Label{
	component.KindKey:          {"Key", "A rusty key. It opens any lock in here, once."},
	component.KindCoin:         {"Coins", "A small pile of coins."},
	component.KindMap:          {"Map", "A crumpled map of the rooms ahead."},
	component.KindChest:        {"Chest", "A heavy wooden chest."},
	component.KindBandage:      {"Bandage", "Stops the bleeding. Mostly."},
	component.KindRegenPotion:  {"Regeneration potion", "Tastes like moss. Closes wounds."},
	component.KindPowerPotion:  {"Power potion", "Makes you tougher for good."},
	component.KindRandomPotion: {"Strange potion", "The label has peeled off."},
	component.KindFists:        {"Fists", "Your bare hands."},
	component.KindSword:        {"Sword", "A plain sword."},
	component.KindWand:         {"Wand", "A twig that hums."},
	component.KindHelm:         {"Helm", "A dented helm."},
	component.KindChestplate:   {"Chestplate", "A battered chestplate."},
}

// gearLabels refines equipment names by tier.
var gearLabels = map[component.ItemKind]map[component.Tier]Label{
	component.KindSword: {
		component.TierBasic:  {"Wooden sword", "Splinters more than it cuts."},
		component.TierIron:   {"Iron sword", "A soldier's blade."},
		component.TierGolden: {"Golden sword", "Heavy, shiny and surprisingly sharp."},
	},
	component.KindWand: {
		component.TierFire:   {"Fire wand", "Spits a steady flame."},
		component.TierRandom: {"Chaos wand", "Sometimes a fireball, sometimes a spark."},
	},
	component.KindHelm: {
		component.TierBasic: {"Leather helm", "Better than nothing."},
		component.TierIron:  {"Iron helm", "Rings like a bell when hit."},
	},
	component.KindChestplate: {
		component.TierBasic: {"Leather chestplate", "Stiff boiled leather."},
		component.TierIron:  {"Iron chestplate", "Heavy plates riveted together."},
	},
}

// DeadMimic labels a chest whose Mimic has been slain.
var DeadMimic = Label{"Dead mimic", "Its jaws hang open. Whatever it swallowed is still inside."}

// ItemLabel returns the label for an item kind and tier.
func ItemLabel(kind component.ItemKind, tier component.Tier) Label {
	if byTier, ok := gearLabels[kind]; ok {
		if l, ok := byTier[tier]; ok {
			return l
		}
	}
	if l, ok := itemLabels[kind]; ok {
		return l
	}
	return Label{Name: kind.String()}
}
