// Package t2048 implements the 2048 sliding-tile puzzle: a pure board engine
// (Tile, Board) and the classic, campaign and endless game modes built on it.
package t2048

// Level defines a campaign stage: reach Target to clear it.
type Level struct {
	ID     int
	Name   string
	Target uint32  // Tile value that clears the level
	Spawn4 float64 // Probability of spawning a 4 (0.0-1.0)
}

// Levels are played in order on the same board; only the target and the
// spawn probability change between them. Targets must strictly increase,
// otherwise the next level would clear on its first move.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
	{ID: 8, Name: "Expert Challenge", Target: 16384, Spawn4: 0.18},
	{ID: 9, Name: "Grandmaster", Target: 32768, Spawn4: 0.20},
	{ID: 10, Name: "Ultimate Champion", Target: 65536, Spawn4: 0.25},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based), or nil.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []uint32 {
	targets := make([]uint32, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
