package parameter

// Grid generation defaults
const (
	// GridDefaultWidth is the generated grid width in tiles
	GridDefaultWidth = 5

	// GridDefaultHeight is the generated grid height in tiles
	GridDefaultHeight = 5

	// GridDefaultOriginX/Y is the search origin
	GridDefaultOriginX = 1
	GridDefaultOriginY = 1

	// GridDefaultGoalX/Y is the search goal
	GridDefaultGoalX = 3
	GridDefaultGoalY = 3

	// GridDefaultWalkableProbability is the chance an individual tile is walkable
	GridDefaultWalkableProbability = 0.5

	// GridDefaultBraiding is the loop factor for the maze layout (0 = perfect maze)
	GridDefaultBraiding = 0.2
)

// Terrain costs, indexed by terrain kind (Normal, Fire, Forest, Sand)
const (
	TerrainCostNormal = 1.0
	TerrainCostFire   = 5.0
	TerrainCostForest = 2.0
	TerrainCostSand   = 3.0
)

// Search tuning
const (
	// SearchDefaultMaxSteps caps pop-and-expand cycles, 0 disables the cap
	SearchDefaultMaxSteps = 0

	// DiagonalCostFactor scales entered-tile cost for diagonal moves (≈√2)
	DiagonalCostFactor = 1.4142135623730951
)

// Planner
const (
	// PathCacheCapacity bounds cached results before the least recently used is evicted
	PathCacheCapacity = 64

	// PlannerCancelCheckSteps is how many steps run between context checks
	PlannerCancelCheckSteps = 64
)

// Sandbox visualiser
const (
	// SandboxStepIntervalMs is the auto-step period while playing
	SandboxStepIntervalMs = 120

	// SandboxToneFoundHz / SandboxToneExhaustedHz are completion cue pitches
	SandboxToneFoundHz     = 880.0
	SandboxToneExhaustedHz = 220.0

	// SandboxToneMs is cue duration
	SandboxToneMs = 80
)
