package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic moves the snake one cell per accepted direction key.
	ModeClassic Mode = "classic"
	// ModeTimed moves the snake on a timer; keys only steer.
	ModeTimed Mode = "timed"
)

// State is the controller state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// Package-level config shared by registry factories (like the platform's
// other per-game settings). Set once at startup.
var settings = config.DefaultSnakeConfig()

// SetConfig replaces the configuration used by New and NewTimed.
func SetConfig(cfg config.SnakeConfig) {
	settings = cfg
}

// Game implements the Snake game loop.
type Game struct {
	mode       Mode
	cfg        config.SnakeConfig
	rng        *rand.Rand
	spawner    *Spawner
	difficulty *config.DifficultyManager

	tick  uint64 // Platform ticks
	moves uint64 // Accepted moves
	score int
	best  int

	// Snake state
	snake   *Snake
	nextDir Direction // Buffered heading for the next timed move

	// Map state
	walls *Walls
	food  core.Point
	field *Field

	// Timed mode pacing
	moveEveryTicks int
	moveTicker     int

	// Screen layout
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int

	state       State
	paused      bool
	tooSmall    bool
	lastOutcome Outcome
	onGameOver  func(core.RoundResult)
}

// New creates a classic (turn-based) Snake game.
func New() *Game {
	return NewWithConfig(ModeClassic, settings)
}

// NewTimed creates a timed Snake game.
func NewTimed() *Game {
	return NewWithConfig(ModeTimed, settings)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.SnakeConfig) *Game {
	return &Game{
		mode: mode,
		cfg:  cfg,
	}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeTimed), func() registry.Game {
		return NewTimed()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name, also stored as the score's game mode.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Timed"
	}
	return "Classic"
}

// OnGameOver registers the callback invoked once when a round ends.
func (g *Game) OnGameOver(fn func(core.RoundResult)) {
	g.onGameOver = fn
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Reset starts a new round: snake at the grid centre heading right,
// border walls and one food item.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.score = 0
	g.state = StateRunning
	g.paused = false
	g.lastOutcome = OutcomeNone

	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	g.walls = NewBorderWalls(w, h)
	g.snake = NewSnake(core.Pt(w/2, h/2))
	g.nextDir = g.snake.Heading()
	g.spawner = NewSpawner(g.rng, g.walls.Interior())
	g.food = g.spawnFood()

	g.field = NewField(w, h)
	g.field.Rebuild(g.walls, g.snake, g.food)

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.moveEveryTicks = g.cfg.Gameplay.MoveEveryTicks
	g.moveTicker = 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to new screen dimensions without resetting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	mapW := g.cfg.Grid.Width * CellWidth
	mapH := g.cfg.Grid.Height + 1 // Score line above the grid
	g.tooSmall = w < mapW || h < mapH

	g.mapOffsetX = max(0, (w-mapW)/2)
	g.mapOffsetY = 1
}

// spawnFood places food at a random free interior cell.
func (g *Game) spawnFood() core.Point {
	p, ok := g.spawner.Spawn(func(p core.Point) bool {
		return g.walls.Has(p) || g.snake.Occupies(p)
	})
	if !ok {
		return noFood
	}
	return p
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionPause) && g.mode == ModeTimed && g.state == StateRunning {
		g.paused = !g.paused
	}

	if g.state == StateGameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var outcome Outcome
	if g.mode == ModeTimed {
		outcome = g.stepTimed(input)
	} else {
		outcome = g.stepClassic(input)
	}

	return core.StepResult{State: g.State(), Moved: outcome.Moved()}
}

// stepClassic consumes one direction per tick. No input means no move.
func (g *Game) stepClassic(input core.InputFrame) Outcome {
	dir, ok := directionFor(input.First)
	if !ok {
		return OutcomeNone
	}
	return g.Turn(dir)
}

// stepTimed buffers steering and moves every moveEveryTicks ticks.
func (g *Game) stepTimed(input core.InputFrame) Outcome {
	if dir, ok := directionFor(input.First); ok && dir != g.snake.Heading().Opposite() {
		g.nextDir = dir
	}

	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return OutcomeNone
	}
	g.moveTicker = 0

	g.snake.SetHeading(g.nextDir)
	outcome := g.Advance()
	g.moveEveryTicks = g.difficulty.MoveInterval(
		g.cfg.Gameplay.MoveEveryTicks,
		g.cfg.Gameplay.MinMoveEveryTicks,
		g.score,
		int(g.moves),
	)
	return outcome
}

// Turn applies one directional input: a reversal of the current heading is
// rejected without moving, anything else updates the heading and advances.
func (g *Game) Turn(dir Direction) Outcome {
	if g.state == StateGameOver || dir == g.snake.Heading().Opposite() {
		g.lastOutcome = OutcomeRejected
		return OutcomeRejected
	}
	g.snake.SetHeading(dir)
	g.nextDir = dir
	return g.Advance()
}

// Advance moves the snake one cell along its heading and applies the
// collision rules in order: wall, self, food.
func (g *Game) Advance() Outcome {
	if g.state == StateGameOver {
		return OutcomeRejected
	}
	g.moves++

	g.snake.Move()
	head := g.snake.Head()

	// Fatal checks come first; nothing else changes on the losing tick.
	if g.walls.Hit(head) {
		return g.finish(OutcomeHitWall)
	}
	if g.snake.CheckSelfCollision() {
		return g.finish(OutcomeHitSelf)
	}

	outcome := OutcomeContinue
	if collides(g.food, head) {
		// Grow doubles the tail so the trim below keeps it in place.
		g.snake.Grow()
		g.score += g.cfg.Gameplay.FoodPoints
		outcome = OutcomeAteFood
	}

	tail := g.snake.Tail()
	g.snake.RemoveTail()
	if !g.snake.Occupies(tail) {
		g.field.Set(tail, CellEmpty)
	}
	g.field.Set(head, CellSnake)

	if outcome == OutcomeAteFood {
		g.food = g.spawnFood()
		if g.food != noFood {
			g.field.Set(g.food, CellFood)
		}
	}

	g.lastOutcome = outcome
	return outcome
}

// finish enters the terminal state and fires the game-over callback.
func (g *Game) finish(o Outcome) Outcome {
	g.state = StateGameOver
	g.lastOutcome = o
	if g.onGameOver != nil {
		g.onGameOver(g.result())
	}
	return o
}

func (g *Game) result() core.RoundResult {
	return core.RoundResult{
		Score:  g.score,
		Mode:   g.Title(),
		Reason: g.lastOutcome.String(),
		Length: g.snake.Len(),
		Ticks:  g.moves,
	}
}

// Render draws the score line and the field to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.field.Draw(dst, g.mapOffsetX, g.mapOffsetY, g.cfg.Glyphs)

	switch {
	case g.state == StateGameOver:
		g.renderOverlay(dst, "Game Over: "+reasonText(g.lastOutcome), fmt.Sprintf("Final Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  Mode: %s", g.score, max(g.best, g.score), g.Title())
	dst.DrawTextColor(g.mapOffsetX, 0, hud, core.ColorHUD)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func reasonText(o Outcome) string {
	switch o {
	case OutcomeHitWall:
		return "hit the wall"
	case OutcomeHitSelf:
		return "bit yourself"
	default:
		return o.String()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Snake returns the live snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food position.
func (g *Game) Food() core.Point {
	return g.food
}

// Walls returns the border walls.
func (g *Game) Walls() *Walls {
	return g.walls
}

// Field returns the render cache.
func (g *Game) Field() *Field {
	return g.field
}

// Over reports whether the round has ended.
func (g *Game) Over() bool {
	return g.state == StateGameOver
}

// LastOutcome returns the outcome of the most recent tick that did something.
func (g *Game) LastOutcome() Outcome {
	return g.lastOutcome
}
