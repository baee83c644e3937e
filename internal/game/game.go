package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/economy"
	"scramble-pro/internal/hint"
	"scramble-pro/internal/powerup"
	"scramble-pro/internal/progress"
	"scramble-pro/internal/scoring"
	"scramble-pro/internal/scramble"
	"scramble-pro/internal/state"
)

var (
	ErrEmptyGuess    = errors.New("empty guess")
	ErrRoundResolved = errors.New("round already resolved")
	ErrRoundPending  = errors.New("round not resolved yet")
	ErrNoRound       = errors.New("no active round")
	ErrHintUsed      = errors.New("hint already used")
	ErrNoSession     = errors.New("no game in progress")
	ErrSessionScreen = errors.New("screen is entered by the session commands")
)

// Options configure a Game. Zero values fall back to the built-in catalog, a
// new profile, the seeded rival leaderboard, a time seeded RNG and the wall
// clock.
type Options struct {
	Catalog     catalog.Catalog
	Profile     *progress.Profile
	Leaderboard scoring.LeaderboardStorage
	Rand        *rand.Rand
	Clock       func() time.Time
	Logger      zerolog.Logger
}

// FeedbackKind colours the last message of the game.
type FeedbackKind int

const (
	Info FeedbackKind = iota
	Success
	Failure
)

// Feedback is the message shown under the puzzle.
type Feedback struct {
	Kind    FeedbackKind
	Message string
}

// Game is the controller of the word scramble: it owns the profile, the
// current session and the screen machine. All calls are expected from a
// single goroutine.
type Game struct {
	Profile  *progress.Profile
	Session  *Session
	Feedback Feedback
	LastHint *hint.Hint

	screen      *fsm.FSM
	catalog     catalog.Catalog
	selector    *Selector
	scrambler   *scramble.Scrambler
	hints       *hint.System
	engine      *progress.Engine
	economy     *economy.Economy
	scoring     scoring.Scoring
	leaderboard scoring.LeaderboardStorage
	rng         *rand.Rand
	now         func() time.Time
	baseLog     zerolog.Logger
	log         zerolog.Logger
}

// NewGame initializes a controller on the Home screen. The catalog must
// have words for every difficulty.
func NewGame(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if err := opts.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if opts.Profile == nil {
		opts.Profile = progress.NewProfile()
	}
	if opts.Leaderboard == nil {
		opts.Leaderboard = scoring.NewMemoryStorage()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	scrambler := scramble.New(opts.Rand)
	engine := progress.NewEngine(opts.Profile, opts.Catalog.AllCategories(), opts.Logger)

	g := &Game{
		Profile:     opts.Profile,
		catalog:     opts.Catalog,
		selector:    NewSelector(opts.Catalog, opts.Rand),
		scrambler:   scrambler,
		hints:       hint.NewSystem(scrambler),
		engine:      engine,
		economy:     economy.New(engine, scrambler, opts.Rand, opts.Logger),
		scoring:     scoring.InitScoring(),
		leaderboard: opts.Leaderboard,
		rng:         opts.Rand,
		now:         opts.Clock,
		baseLog:     opts.Logger,
		log:         opts.Logger,
	}
	g.screen = newScreenFSM(g.clearSession)
	return g, nil
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return Screen(g.screen.Current())
}

// Round returns the live round, or nil outside a session.
func (g *Game) Round() *state.Round {
	if g.Session == nil {
		return nil
	}
	return g.Session.Round
}

// GoToScreen navigates to s. Playing and Complete are only reachable through
// SelectMode and AdvanceRound.
func (g *Game) GoToScreen(ctx context.Context, s Screen) error {
	if sessionScreen(s) {
		return fmt.Errorf("go to %s: %w", s, ErrSessionScreen)
	}
	if g.Screen() == s {
		return nil
	}
	if err := g.screen.Event(ctx, string(s)); err != nil {
		return fmt.Errorf("go to %s from %s: %w", s, g.Screen(), err)
	}
	return nil
}

// SelectMode starts a fresh session in mode m.
func (g *Game) SelectMode(ctx context.Context, m Mode) error {
	cfg, err := LookupMode(m)
	if err != nil {
		return err
	}
	if err := g.screen.Event(ctx, string(Playing)); err != nil {
		return fmt.Errorf("select mode on %s: %w", g.Screen(), err)
	}

	g.Session = NewSession(cfg, g.now())
	g.log = g.baseLog.With().Str("session", g.Session.ID.String()).Logger()
	g.log.Info().Str("mode", string(m)).Int("rounds", cfg.Rounds).Msg("session started")
	g.startRound()
	return nil
}

func (g *Game) startRound() {
	pick := g.selector.Select(g.Profile)
	scrambled, err := g.scrambler.Scramble(pick.Word)
	if err != nil {
		g.log.Warn().Err(err).Str("word", pick.Word).Msg("word cannot be scrambled")
		scrambled = pick.Word
	}

	g.Session.Round = state.NewRound(pick.Word, scrambled, pick.Category, pick.Difficulty, g.now())
	g.Feedback = Feedback{}
	g.LastHint = nil

	g.log.Debug().
		Int("round", g.Session.CurrentRound).
		Str("word", pick.Word).
		Str("category", pick.Category).
		Str("difficulty", pick.Difficulty.String()).
		Msg("round started")
}

// activeRound returns the round when it is accepting input.
func (g *Game) activeRound() (*state.Round, error) {
	r := g.Round()
	if r == nil {
		return nil, ErrNoRound
	}
	if r.AwaitingResolution() {
		return nil, ErrRoundResolved
	}
	return r, nil
}

// SubmitGuess checks raw against the answer. A wrong guess ends the round.
func (g *Game) SubmitGuess(ctx context.Context, raw string) (bool, error) {
	guess := state.NormalizeGuess(raw)
	if guess == "" {
		return false, ErrEmptyGuess
	}
	r, err := g.activeRound()
	if err != nil {
		return false, err
	}

	correct := r.IsCorrect(guess)
	if err := g.resolve(ctx, correct, r.ElapsedAt(g.now())); err != nil {
		return false, err
	}
	if !correct {
		g.Feedback = Feedback{Failure, fmt.Sprintf("'%s' is incorrect. The word was '%s'", guess, r.Word)}
	}
	return correct, nil
}

// SkipRound gives up on the current word.
func (g *Game) SkipRound(ctx context.Context) error {
	r, err := g.activeRound()
	if err != nil {
		return err
	}
	if err := g.resolve(ctx, false, r.ElapsedAt(g.now())); err != nil {
		return err
	}
	g.Feedback = Feedback{Failure, fmt.Sprintf("Skipped. The word was '%s'", r.Word)}
	return nil
}

// CheckTimeout resolves the round as missed once its time is up. It reports
// whether the round timed out.
func (g *Game) CheckTimeout(ctx context.Context) bool {
	if g.Screen() != Playing {
		return false
	}
	r, err := g.activeRound()
	if err != nil {
		return false
	}
	now := g.now()
	if r.FreezeRemaining(now) > 0 || r.ElapsedAt(now) < g.Session.Mode.RoundTime {
		return false
	}

	if err := g.resolve(ctx, false, g.Session.Mode.RoundTime); err != nil {
		g.log.Error().Err(err).Msg("timeout resolution failed")
		return false
	}
	g.Feedback = Feedback{Failure, fmt.Sprintf("Time's up! The word was '%s'", r.Word)}
	return true
}

// resolve scores the round, records its result and updates progression.
func (g *Game) resolve(ctx context.Context, correct bool, elapsed time.Duration) error {
	r := g.Session.Round
	hintsUsed := r.Hints.Used()

	score := 0
	if correct {
		score = g.scoring.Score(scoring.RoundInput{
			ElapsedSeconds: elapsed.Seconds(),
			RoundSeconds:   g.Session.Mode.RoundTime.Seconds(),
			Difficulty:     r.Difficulty,
			HintsUsed:      hintsUsed,
			Streak:         g.Profile.CurrentStreak,
			Multiplier:     r.Multiplier,
		})
	}

	if err := r.Resolve(ctx, correct, elapsed); err != nil {
		return fmt.Errorf("resolve round %d: %w", g.Session.CurrentRound, errors.Join(ErrRoundResolved, err))
	}

	g.Session.Results.Append(scoring.RoundResult{
		Word:           r.Word,
		ElapsedSeconds: elapsed.Seconds(),
		Score:          score,
		Difficulty:     r.Difficulty,
		Correct:        correct,
	})
	g.engine.ResolveRound(progress.RoundOutcome{
		Correct:        correct,
		ElapsedSeconds: elapsed.Seconds(),
		Difficulty:     r.Difficulty,
		Category:       r.Category,
		HintsUsed:      hintsUsed,
		FinalRound:     g.Session.IsFinalRound(),
	})

	if correct {
		g.Feedback = Feedback{Success, fmt.Sprintf("Correct! '%s' is right! +%d points!", r.Word, score)}
	}

	g.log.Info().
		Int("round", g.Session.CurrentRound).
		Bool("correct", correct).
		Int("score", score).
		Int("total", g.Session.Score()).
		Dur("elapsed", elapsed).
		Msg("round resolved")
	return nil
}

// AdvanceRound moves past a resolved round, completing the session after the
// last one.
func (g *Game) AdvanceRound(ctx context.Context) error {
	r := g.Round()
	if r == nil || g.Session.IsFinished() {
		return ErrNoRound
	}
	if !r.AwaitingResolution() {
		return ErrRoundPending
	}

	g.Session.CurrentRound++
	if !g.Session.IsFinished() {
		g.startRound()
		return nil
	}

	g.engine.ResolveGame(g.Session.Results)
	g.Feedback = Feedback{Info, g.Session.Results.PerformanceMessage()}
	if err := g.submitScore(); err != nil {
		g.log.Error().Err(err).Msg("leaderboard update failed")
	}
	g.log.Info().
		Int("score", g.Session.Score()).
		Int("correct", g.Session.Results.Correct()).
		Dur("duration", g.Session.Duration(g.now())).
		Msg("session complete")

	if err := g.screen.Event(ctx, string(Complete)); err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// UseHint reveals hint t of the current round.
func (g *Game) UseHint(t hint.Type) (hint.Hint, error) {
	r, err := g.activeRound()
	if err != nil {
		return hint.Hint{}, err
	}
	if !r.Hints.Take(t) {
		return hint.Hint{}, fmt.Errorf("%s: %w", t, ErrHintUsed)
	}
	g.engine.RecordHint()

	h := g.hints.Reveal(t, r.Word, r.Category)
	g.LastHint = &h
	g.log.Debug().Str("hint", string(t)).Msg("hint used")
	return h, nil
}

// UsePowerUp spends one id on the current round.
func (g *Game) UsePowerUp(id powerup.ID) bool {
	ok := g.economy.Consume(g.Round(), id, g.now())
	if ok {
		info, _ := powerup.Lookup(id)
		g.Feedback = Feedback{Info, info.Name + " activated!"}
	}
	return ok
}

// Purchase buys a shop bundle.
func (g *Game) Purchase(id powerup.BundleID) bool {
	return g.economy.Purchase(id)
}

// ResetSession abandons any session and returns Home. The profile is kept.
func (g *Game) ResetSession(ctx context.Context) error {
	if err := g.GoToScreen(ctx, Home); err != nil {
		return err
	}
	g.clearSession()
	return nil
}

// PlayAgain leaves a completed session for the mode menu. Entering the menu
// from Complete clears the session.
func (g *Game) PlayAgain(ctx context.Context) error {
	if g.Screen() != Complete {
		return fmt.Errorf("play again: %w", ErrNoSession)
	}
	return g.GoToScreen(ctx, ModeSelect)
}

// ShareScore publishes the session result. It reports whether
// social_butterfly was newly unlocked.
func (g *Game) ShareScore() bool {
	if g.Screen() != Complete {
		return false
	}
	g.log.Info().Int("score", g.Session.Score()).Msg("score shared")
	return g.engine.Unlock(progress.SocialButterfly)
}

// SetPreferences replaces the word selection preferences.
func (g *Game) SetPreferences(prefs progress.Preferences) {
	g.engine.SetPreferences(prefs)
}

// Categories lists every category of the catalog.
func (g *Game) Categories() []string {
	return g.catalog.AllCategories()
}

// NextDifficulty is the tier the next round would be played at.
func (g *Game) NextDifficulty() catalog.Difficulty {
	return g.selector.Difficulty(g.Profile)
}

// RemainingTime is the time left in the current round.
func (g *Game) RemainingTime() time.Duration {
	r := g.Round()
	if r == nil {
		return 0
	}
	if r.AwaitingResolution() {
		return max(0, g.Session.Mode.RoundTime-r.Elapsed)
	}
	return max(0, g.Session.Mode.RoundTime-r.ElapsedAt(g.now()))
}

// FreezeRemaining is the time left on an active time freeze.
func (g *Game) FreezeRemaining() time.Duration {
	r := g.Round()
	if r == nil {
		return 0
	}
	return r.FreezeRemaining(g.now())
}

// Leaderboard returns the rivals and the player, best first.
func (g *Game) Leaderboard() ([]scoring.LeaderboardEntry, error) {
	if err := g.submitScore(); err != nil {
		return nil, err
	}
	return scoring.Ranking(g.leaderboard)
}

// DrainEvents returns level ups and unlocks since the last call.
func (g *Game) DrainEvents() []progress.Event {
	return g.engine.DrainEvents()
}

func (g *Game) submitScore() error {
	return scoring.SubmitEntry(g.leaderboard, scoring.LeaderboardEntry{
		Name:  scoring.PlayerName,
		Score: g.Profile.TotalScore,
		Level: g.Profile.Level,
		Games: g.Profile.TotalGames,
	})
}

func (g *Game) clearSession() {
	if g.Session != nil {
		g.log.Debug().Msg("session cleared")
	}
	g.Session = nil
	g.Feedback = Feedback{}
	g.LastHint = nil
	g.log = g.baseLog
}
