package main

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// modeAliases maps friendly names to registered mode IDs.
var modeAliases = map[string]string{
	"classic":  t2048.IDClassic,
	"campaign": t2048.IDCampaign,
	"endless":  t2048.IDEndless,
}

// resolveMode turns a mode argument into a registered ID.
// An empty argument selects the classic mode.
func resolveMode(arg string) (string, error) {
	if arg == "" {
		return t2048.IDClassic, nil
	}
	if id, ok := modeAliases[arg]; ok {
		return id, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", arg)
}

// modeAlias returns the friendly name of a mode ID, or "" if it has none.
func modeAlias(id string) string {
	for alias, target := range modeAliases {
		if target == id {
			return alias
		}
	}
	return ""
}
