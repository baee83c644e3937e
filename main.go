package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"scramble-pro/internal/catalog"
	"scramble-pro/internal/config"
	"scramble-pro/internal/game"
	"scramble-pro/internal/hint"
	"scramble-pro/internal/powerup"
	"scramble-pro/internal/progress"
)

type LocalState struct {
	Game   *game.Game
	Input  textinput.Model
	Keys   keyMap
	Notice []string
	Err    string

	ctx  context.Context
	tick time.Duration
	log  zerolog.Logger
}

type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func initialModel(g *game.Game, tick time.Duration, log zerolog.Logger) *LocalState {
	ti := textinput.New()
	ti.Placeholder = "Enter the unscrambled word..."
	ti.CharLimit = 32
	ti.Width = 32

	s := &LocalState{
		Game:  g,
		Input: ti,
		Keys:  newKeyMap(),
		ctx:   context.Background(),
		tick:  tick,
		log:   log,
	}
	s.syncInput()
	return s
}

func (s *LocalState) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(s.tick))
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		s.Game.CheckTimeout(s.ctx)
		s.collectEvents()
		s.syncInput()
		return s, tickCmd(s.tick)
	case tea.KeyMsg:
		if key.Matches(msg, s.Keys.Quit) {
			return s, tea.Quit
		}
		s.Err = ""

		var cmd tea.Cmd
		switch s.Game.Screen() {
		case game.Home:
			cmd = s.updateHome(msg)
		case game.ModeSelect:
			s.updateModeSelect(msg)
		case game.Playing:
			cmd = s.updatePlaying(msg)
		case game.Shop:
			s.updateShop(msg)
		case game.Complete:
			s.updateComplete(msg)
		default:
			if key.Matches(msg, s.Keys.Back, s.Keys.Home) {
				s.fail(s.Game.GoToScreen(s.ctx, game.Home))
			}
		}

		s.collectEvents()
		s.syncInput()
		return s, cmd
	}
	return s, nil
}

func (s *LocalState) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s":
		s.fail(s.Game.GoToScreen(s.ctx, game.ModeSelect))
	case "l":
		s.fail(s.Game.GoToScreen(s.ctx, game.Leaderboard))
	case "a":
		s.fail(s.Game.GoToScreen(s.ctx, game.Achievements))
	case "p":
		s.fail(s.Game.GoToScreen(s.ctx, game.Shop))
	case "d":
		s.Game.SetPreferences(cycleDifficulty(s.Game.Profile.Preferences))
	case "c":
		s.Game.SetPreferences(cycleCategory(s.Game.Profile.Preferences, s.Game.Categories()))
	case "q":
		return tea.Quit
	}
	return nil
}

func (s *LocalState) updateModeSelect(msg tea.KeyMsg) {
	if key.Matches(msg, s.Keys.Back) {
		s.fail(s.Game.GoToScreen(s.ctx, game.Home))
		return
	}
	if i, ok := digit(msg.String(), len(game.Modes)); ok {
		s.Notice = nil
		s.fail(s.Game.SelectMode(s.ctx, game.Modes[i].Mode))
	}
}

func (s *LocalState) updatePlaying(msg tea.KeyMsg) tea.Cmd {
	round := s.Game.Round()

	if key.Matches(msg, s.Keys.AdPowerUp) {
		_, err := s.Game.GrantAdReward(game.RewardPowerUp)
		s.fail(err)
		return nil
	}
	if key.Matches(msg, s.Keys.Back) {
		s.fail(s.Game.GoToScreen(s.ctx, game.Home))
		return nil
	}

	if round.AwaitingResolution() {
		if key.Matches(msg, s.Keys.Submit) {
			s.Notice = nil
			s.fail(s.Game.AdvanceRound(s.ctx))
		}
		return nil
	}

	switch {
	case key.Matches(msg, s.Keys.Submit):
		_, err := s.Game.SubmitGuess(s.ctx, s.Input.Value())
		if errors.Is(err, game.ErrEmptyGuess) {
			s.Err = "Please enter a word!"
			return nil
		}
		s.fail(err)
		s.Input.Reset()
		return nil
	case key.Matches(msg, s.Keys.Skip):
		s.fail(s.Game.SkipRound(s.ctx))
		return nil
	case key.Matches(msg, s.Keys.AdHint):
		_, err := s.Game.GrantAdReward(game.RewardHint)
		s.fail(err)
		return nil
	}

	if i := bindingIndex(msg, s.Keys.Hints); i >= 0 {
		_, err := s.Game.UseHint(hint.Types[i])
		s.fail(err)
		return nil
	}
	if i := bindingIndex(msg, s.Keys.PowerUps); i >= 0 {
		id := powerup.All[i]
		if !s.Game.UsePowerUp(id) {
			info, _ := powerup.Lookup(id)
			if s.Game.Profile.Inventory.Count(id) == 0 {
				s.Err = fmt.Sprintf("No %s left", info.Name)
			} else {
				s.Err = fmt.Sprintf("%s cannot be used now", info.Name)
			}
		}
		return nil
	}
	if s.Input.Value() == "" && round.HasWordBank() {
		if i, ok := digit(msg.String(), len(round.WordBank)); ok {
			_, err := s.Game.SubmitGuess(s.ctx, round.WordBank[i])
			s.fail(err)
			return nil
		}
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd
}

func (s *LocalState) updateShop(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.Keys.Back, s.Keys.Home):
		s.fail(s.Game.GoToScreen(s.ctx, game.Home))
	case msg.String() == "c":
		_, err := s.Game.GrantAdReward(game.RewardCoins)
		s.fail(err)
	default:
		if i, ok := digit(msg.String(), len(powerup.Bundles)); ok {
			b := powerup.Bundles[i]
			if s.Game.Purchase(b.ID) {
				s.Notice = append(s.Notice, fmt.Sprintf("Purchased %s!", b.Name))
			} else {
				s.Err = fmt.Sprintf("%s costs %d coins", b.Name, b.Cost)
			}
		}
	}
}

func (s *LocalState) updateComplete(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.Keys.Submit):
		s.Notice = nil
		s.fail(s.Game.PlayAgain(s.ctx))
	case msg.String() == "s":
		if s.Game.ShareScore() {
			s.Notice = append(s.Notice, "Score shared!")
		}
	case key.Matches(msg, s.Keys.Home):
		s.Notice = nil
		s.fail(s.Game.ResetSession(s.ctx))
	}
}

// collectEvents turns level ups and unlocks into notices.
func (s *LocalState) collectEvents() {
	for _, ev := range s.Game.DrainEvents() {
		switch ev.Kind {
		case progress.LevelUp:
			s.Notice = append(s.Notice, fmt.Sprintf("Level up! You're now level %d (+%d coins)", ev.Level, ev.Coins))
		case progress.AchievementUnlocked:
			s.Notice = append(s.Notice, fmt.Sprintf("Achievement unlocked: %s (+%d XP)", ev.Achievement.Name, ev.Achievement.XP))
		}
	}
}

func (s *LocalState) syncInput() {
	r := s.Game.Round()
	if s.Game.Screen() == game.Playing && r != nil && !r.AwaitingResolution() {
		s.Input.Focus()
		return
	}
	s.Input.Blur()
	s.Input.Reset()
}

func (s *LocalState) fail(err error) {
	if err == nil {
		return
	}
	s.log.Debug().Err(err).Str("screen", string(s.Game.Screen())).Msg("command rejected")
	s.Err = err.Error()
}

// cycleDifficulty steps auto -> easy -> medium -> hard -> auto.
func cycleDifficulty(p progress.Preferences) progress.Preferences {
	if p.AutoDifficulty {
		p.AutoDifficulty = false
		p.Difficulty = catalog.Difficulties[0]
		return p
	}
	i := slices.Index(catalog.Difficulties, p.Difficulty)
	if i < 0 || i == len(catalog.Difficulties)-1 {
		p.AutoDifficulty = true
		return p
	}
	p.Difficulty = catalog.Difficulties[i+1]
	return p
}

// cycleCategory steps from no preference through each single category and
// back. A multi category preference resets to none.
func cycleCategory(p progress.Preferences, all []string) progress.Preferences {
	next := 0
	switch len(p.PreferredCategories) {
	case 0:
	case 1:
		next = slices.Index(all, p.PreferredCategories[0]) + 1
	default:
		next = len(all)
	}
	if next >= len(all) {
		p.PreferredCategories = nil
	} else {
		p.PreferredCategories = []string{all[next]}
	}
	return p
}

// digit maps "1".."n" to a zero based index.
func digit(k string, n int) (int, bool) {
	if len(k) != 1 || k[0] < '1' || int(k[0]-'1') >= n {
		return 0, false
	}
	return int(k[0] - '1'), true
}

type difficultyFlag struct {
	value catalog.Difficulty
	set   bool
}

func (d *difficultyFlag) String() string {
	return d.value.String()
}

func (d *difficultyFlag) Set(s string) error {
	v, err := catalog.ParseDifficulty(s)
	if err != nil {
		return err
	}
	d.value = v
	d.set = true
	return nil
}

type modeFlag game.Mode

func (m *modeFlag) String() string {
	return string(*m)
}

func (m *modeFlag) Set(s string) error {
	if _, err := game.LookupMode(game.Mode(s)); err != nil {
		return err
	}
	*m = modeFlag(s)
	return nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, *os.File, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return zerolog.New(f).Level(lvl).With().Timestamp().Logger(), f, nil
}

func main() {
	var mode modeFlag
	var difficulty difficultyFlag
	var seed int64
	var wordList string
	var categories string
	var auto bool

	flag.Var(&mode, "mode", "Start straight into a mode (classic, speed, marathon, themed)")
	flag.Var(&mode, "m", "Start mode (shorthand)")
	flag.Int64Var(&seed, "seed", 0, "Seed the word selection for a repeatable game")
	flag.StringVar(&wordList, "words", "", "Comma separated word list files or directories")
	flag.StringVar(&wordList, "w", "", "Word lists (shorthand)")
	flag.Var(&difficulty, "difficulty", "Preferred difficulty (easy, medium, hard)")
	flag.Var(&difficulty, "d", "Preferred difficulty (shorthand)")
	flag.BoolVar(&auto, "auto", true, "Adjust difficulty to your accuracy")
	flag.StringVar(&categories, "categories", "", "Comma separated categories to draw words from")
	flag.StringVar(&categories, "c", "", "Categories (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [word-list files...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -m, --mode=NAME          Start a classic, speed, marathon or themed game\n")
		fmt.Fprintf(os.Stderr, "       --seed=N             Seed the word selection\n")
		fmt.Fprintf(os.Stderr, "   -w, --words=a.txt,dir    Load word lists instead of the built-in words\n")
		fmt.Fprintf(os.Stderr, "   -d, --difficulty=LEVEL   Preferred difficulty when auto is off\n")
		fmt.Fprintf(os.Stderr, "       --auto=false         Disable automatic difficulty\n")
		fmt.Fprintf(os.Stderr, "   -c, --categories=a,b     Only draw words from these categories\n")
		fmt.Fprintf(os.Stderr, "   -h, --help               Show this help message\n")
	}

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// flags win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "auto":
			cfg.AutoDifficulty = auto
		}
	})
	if difficulty.set {
		cfg.Difficulty = difficulty.String()
	}
	if wordList != "" {
		cfg.WordsPaths = strings.Split(wordList, ",")
	}
	if categories != "" {
		cfg.Categories = strings.Split(categories, ",")
	}
	cfg.WordsPaths = append(cfg.WordsPaths, flag.Args()...)

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	words := catalog.Default()
	if len(cfg.WordsPaths) > 0 {
		words, err = catalog.LoadCatalog(cfg.WordsPaths)
		if err != nil {
			fmt.Printf("Error loading word lists: %v\n", err)
			os.Exit(1)
		}
	}

	if !cfg.Seeded() {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", cfg.Seed).Strs("words", cfg.WordsPaths).Msg("starting")

	profile := progress.NewProfile()
	g, err := game.NewGame(game.Options{
		Catalog: words,
		Profile: profile,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
		Logger:  logger,
	})
	if err != nil {
		fmt.Printf("Error creating game: %v\n", err)
		os.Exit(1)
	}

	prefDifficulty, _ := catalog.ParseDifficulty(cfg.Difficulty)
	prefs := progress.Preferences{
		Difficulty:          prefDifficulty,
		PreferredCategories: cfg.PreferredCategories(),
		AutoDifficulty:      cfg.AutoDifficulty,
	}
	for _, c := range prefs.PreferredCategories {
		if !slices.Contains(g.Categories(), c) {
			logger.Warn().Str("category", c).Msg("unknown preferred category")
		}
	}
	g.SetPreferences(prefs)

	if mode != "" {
		ctx := context.Background()
		err = g.GoToScreen(ctx, game.ModeSelect)
		if err == nil {
			err = g.SelectMode(ctx, game.Mode(mode))
		}
		if err != nil {
			fmt.Printf("Error starting game: %v\n", err)
			os.Exit(1)
		}
	}

	model := initialModel(g, cfg.TickInterval, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
	}

	fmt.Printf("Level %d | %d XP | %d games | total score %d\n",
		profile.Level, profile.XP, profile.TotalGames, profile.TotalScore)
}
