package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"scramble-pro/internal/game"
	"scramble-pro/internal/hint"
	"scramble-pro/internal/powerup"
	"scramble-pro/internal/progress"
	"scramble-pro/internal/scoring"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	wordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	revealStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Underline(true)
	boxStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.ThickBorder())
	titleStyle  = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
)

func (s *LocalState) View() string {
	var body string
	switch s.Game.Screen() {
	case game.Home:
		body = s.viewHome()
	case game.ModeSelect:
		body = s.viewModeSelect()
	case game.Playing:
		body = s.viewPlaying()
	case game.Complete:
		body = s.viewComplete()
	case game.Leaderboard:
		body = s.viewLeaderboard()
	case game.Achievements:
		body = s.viewAchievements()
	case game.Shop:
		body = s.viewShop()
	}

	var b strings.Builder
	b.WriteString(s.profileBar())
	b.WriteString("\n\n")
	b.WriteString(body)
	for _, n := range s.Notice {
		b.WriteString("\n" + greenStyle.Render(n))
	}
	if s.Err != "" {
		b.WriteString("\n" + redStyle.Render(s.Err))
	}
	return b.String()
}

func (s *LocalState) profileBar() string {
	p := s.Game.Profile
	into, span := p.XPIntoLevel()
	return titleStyle.Render("WORD SCRAMBLE PRO") + "  " + scoreStyle.Render(fmt.Sprintf(
		"LEVEL %d | XP %d/%d | COINS %d | STREAK %d",
		p.Level, into, span, p.Coins, p.CurrentStreak))
}

func (s *LocalState) viewHome() string {
	p := s.Game.Profile
	st := p.Stats

	var b strings.Builder
	b.WriteString(boldStyle.Render("Statistics") + "\n")
	fmt.Fprintf(&b, "  Games played:  %d\n", st.GamesPlayed)
	fmt.Fprintf(&b, "  Words solved:  %d\n", st.WordsCorrect)
	fmt.Fprintf(&b, "  Accuracy:      %.1f%%\n", p.Accuracy()*100)
	fmt.Fprintf(&b, "  Perfect games: %d\n", st.PerfectGames)
	fmt.Fprintf(&b, "  Best streak:   %d\n", p.BestStreak)
	fmt.Fprintf(&b, "  Fastest solve: %s\n", formatSeconds(st.FastestSolve))
	fmt.Fprintf(&b, "  Hints used:    %d\n", st.HintsUsed)
	fmt.Fprintf(&b, "  Next words:    %s\n", s.Game.NextDifficulty())

	b.WriteString("\n" + boldStyle.Render("Settings") + "\n")
	fmt.Fprintf(&b, "  Difficulty:    %s\n", difficultySetting(p.Preferences))
	fmt.Fprintf(&b, "  Categories:    %s\n", categorySetting(p.Preferences))

	if recent := p.RecentAchievements(3); len(recent) > 0 {
		b.WriteString("\n" + boldStyle.Render("Recent achievements") + "\n")
		for _, id := range recent {
			a, _ := progress.LookupAchievement(id)
			fmt.Fprintf(&b, "  * %s\n", a.Name)
		}
	}

	b.WriteString("\n" + dimStyle.Render("s start | l leaderboard | a achievements | p shop | d difficulty | c categories | q quit"))
	return b.String()
}

func difficultySetting(p progress.Preferences) string {
	if p.AutoDifficulty {
		return "auto"
	}
	return p.Difficulty.String()
}

func categorySetting(p progress.Preferences) string {
	if len(p.PreferredCategories) == 0 {
		return "all"
	}
	return strings.Join(p.PreferredCategories, ", ")
}

func (s *LocalState) viewModeSelect() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("Choose your game mode") + "\n\n")
	for i, m := range game.Modes {
		fmt.Fprintf(&b, "  %d. %s\n     %s (%d rounds, %ds each)\n",
			i+1, boldStyle.Render(m.Name), m.Description, m.Rounds, int(m.RoundTime.Seconds()))
	}
	b.WriteString("\n" + dimStyle.Render("1-4 select | esc back"))
	return b.String()
}

func (s *LocalState) viewPlaying() string {
	g := s.Game
	sess := g.Session
	r := g.Round()

	var b strings.Builder
	status := fmt.Sprintf("%s | ROUND %d/%d | SCORE %d | %s",
		strings.ToUpper(sess.Mode.Name), sess.CurrentRound, sess.TotalRounds(), sess.Score(), r.Difficulty)
	b.WriteString(scoreStyle.Render(status) + "\n")
	b.WriteString(s.timerLine() + "\n\n")

	b.WriteString(boxStyle.Render(wordStyle.Render(spaced(r.Scrambled))) + "\n")
	if len(r.Revealed) > 0 {
		b.WriteString("Revealed: " + renderPattern(r.Pattern()) + "\n")
	}
	if r.Multiplier > 1 {
		b.WriteString(greenStyle.Render(fmt.Sprintf("%dx points active", r.Multiplier)) + "\n")
	}
	if r.HasWordBank() {
		b.WriteString("\nWord bank:\n")
		for i, w := range r.WordBank {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, w)
		}
	}
	if g.LastHint != nil {
		b.WriteString("\n" + scoreStyle.Render(g.LastHint.Text) + "\n")
	}

	b.WriteString("\n")
	if r.AwaitingResolution() {
		b.WriteString(s.feedback() + "\n\n")
		b.WriteString(dimStyle.Render("enter next round | ctrl+e earn power-up | esc home"))
		return b.String()
	}

	if s.Game.Feedback.Message != "" {
		b.WriteString(s.feedback() + "\n")
	}
	b.WriteString(s.Input.View() + "\n\n")
	b.WriteString(s.hintBar() + "\n")
	b.WriteString(s.powerUpBar() + "\n\n")
	b.WriteString(dimStyle.Render("enter guess | ctrl+s skip | ctrl+w free hint | ctrl+e earn power-up | esc home"))
	return b.String()
}

func (s *LocalState) timerLine() string {
	remaining := s.Game.RemainingTime()
	style := scoreStyle
	if remaining <= s.Game.Session.Mode.RoundTime/3 {
		style = redStyle
	}
	line := "TIME: " + style.Render(formatClock(remaining))
	if frozen := s.Game.FreezeRemaining(); frozen > 0 {
		line += " " + greenStyle.Render(fmt.Sprintf("(frozen %ds)", int(math.Ceil(frozen.Seconds()))))
	}
	return line
}

func (s *LocalState) hintBar() string {
	parts := make([]string, 0, len(hint.Types))
	for i, t := range hint.Types {
		label := fmt.Sprintf("F%d %s", i+1, t.Label())
		if s.Game.HintAvailable(t) {
			parts = append(parts, label)
		} else {
			parts = append(parts, dimStyle.Render(label+" (used)"))
		}
	}
	return "Hints: " + strings.Join(parts, " | ")
}

func (s *LocalState) powerUpBar() string {
	inv := s.Game.Profile.Inventory
	parts := make([]string, 0, len(powerup.All))
	for i, id := range powerup.All {
		info, _ := powerup.Lookup(id)
		label := fmt.Sprintf("F%d %s x%d", i+5, info.Name, inv.Count(id))
		if inv.Count(id) == 0 {
			label = dimStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return "Power-ups: " + strings.Join(parts, " | ")
}

func (s *LocalState) feedback() string {
	f := s.Game.Feedback
	switch f.Kind {
	case game.Success:
		return greenStyle.Render(f.Message)
	case game.Failure:
		return redStyle.Render(f.Message)
	}
	return f.Message
}

func (s *LocalState) viewComplete() string {
	sess := s.Game.Session
	results := sess.Results

	var b strings.Builder
	b.WriteString(greenStyle.Render(fmt.Sprintf("Game complete! Final score: %d", sess.Score())) + "\n\n")
	fmt.Fprintf(&b, "  Accuracy:      %.0f%% (%d/%d)\n", results.Accuracy()*100, results.Correct(), results.Len())
	fmt.Fprintf(&b, "  Average time:  %.1fs\n", results.AverageSeconds())
	fmt.Fprintf(&b, "  Fastest solve: %s\n\n", formatSeconds(s.Game.Profile.Stats.FastestSolve))

	for i, r := range results.Results() {
		mark := greenStyle.Render("OK")
		if !r.Correct {
			mark = redStyle.Render("X ")
		}
		fmt.Fprintf(&b, "  %2d. %s %-16s %5.1fs %4d pts  %s\n", i+1, mark, r.Word, r.ElapsedSeconds, r.Score, r.Difficulty)
	}

	b.WriteString("\n" + s.feedback() + "\n\n")
	b.WriteString(dimStyle.Render("enter play again | s share | h home"))
	return b.String()
}

func (s *LocalState) viewLeaderboard() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("Leaderboard") + "\n\n")

	entries, err := s.Game.Leaderboard()
	if err != nil {
		return redStyle.Render("Leaderboard unavailable: " + err.Error())
	}
	for i, e := range entries {
		line := fmt.Sprintf("  %d. %-12s %6d pts  L%-3d %d games", i+1, e.Name, e.Score, e.Level, e.Games)
		if e.Name == scoring.PlayerName {
			line = scoreStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("esc back"))
	return b.String()
}

func (s *LocalState) viewAchievements() string {
	p := s.Game.Profile

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d/%d)\n\n", boldStyle.Render("Achievements"), len(p.Achievements), len(progress.Achievements))
	for _, a := range progress.Achievements {
		line := fmt.Sprintf("  %-18s %-32s +%d XP", a.Name, a.Description, a.XP)
		if p.HasAchievement(a.ID) {
			line = greenStyle.Render(line)
		} else {
			line = dimStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("esc back"))
	return b.String()
}

func (s *LocalState) viewShop() string {
	inv := s.Game.Profile.Inventory

	var b strings.Builder
	b.WriteString(boldStyle.Render("Power-up shop") + "\n\n")
	for i, bundle := range powerup.Bundles {
		items := make([]string, 0, len(bundle.Items))
		for _, it := range bundle.Items {
			info, _ := powerup.Lookup(it.ID)
			items = append(items, fmt.Sprintf("%dx %s", it.Quantity, info.Name))
		}
		fmt.Fprintf(&b, "  %d. %s (%d coins)\n     %s\n", i+1, boldStyle.Render(bundle.Name), bundle.Cost, strings.Join(items, ", "))
	}

	b.WriteString("\n" + boldStyle.Render("Inventory") + "\n")
	for _, id := range powerup.All {
		info, _ := powerup.Lookup(id)
		fmt.Fprintf(&b, "  %-15s x%d  %s\n", info.Name, inv.Count(id), dimStyle.Render(info.Description))
	}
	b.WriteString("\n" + dimStyle.Render("1-3 buy | c watch ad for coins | esc back"))
	return b.String()
}

func renderPattern(p string) string {
	var b strings.Builder
	for _, r := range p {
		if r == '_' {
			b.WriteString("_ ")
			continue
		}
		b.WriteString(revealStyle.Render(string(r)) + " ")
	}
	return strings.TrimSpace(b.String())
}

func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}

func formatClock(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatSeconds(sec float64) string {
	if math.IsInf(sec, 1) {
		return "N/A"
	}
	return fmt.Sprintf("%.1fs", sec)
}
