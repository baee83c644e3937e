package progress

// AchievementID names a one-time milestone.
type AchievementID string

const (
	FirstGame       AchievementID = "first_game"
	PerfectGame     AchievementID = "perfect_game"
	SpeedDemon      AchievementID = "speed_demon"
	Streak3         AchievementID = "streak_3"
	Streak7         AchievementID = "streak_7"
	WordMaster      AchievementID = "word_master"
	HintLess        AchievementID = "hint_less"
	PowerUser       AchievementID = "power_user"
	SocialButterfly AchievementID = "social_butterfly"
	Level10         AchievementID = "level_10"
	CategoryMaster  AchievementID = "category_master"
)

// Achievement describes a milestone and its XP reward.
type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
	XP          int
}

// Achievements lists every milestone in display order.
var Achievements = []Achievement{
	{FirstGame, "Getting Started", "Complete your first game", 100},
	{PerfectGame, "Perfectionist", "Get all words correct in one game", 200},
	{SpeedDemon, "Speed Demon", "Solve a word in under 10 seconds", 150},
	{Streak3, "Hot Streak", "Get 3 words correct in a row", 100},
	{Streak7, "Daily Warrior", "Play for 7 consecutive days", 300},
	{WordMaster, "Word Master", "Solve 100 words total", 500},
	{HintLess, "No Help Needed", "Complete a game without using hints", 250},
	{PowerUser, "Power User", "Use 10 power-ups in total", 200},
	{SocialButterfly, "Social Butterfly", "Share your score", 150},
	{Level10, "Rising Star", "Reach level 10", 400},
	{CategoryMaster, "Category Expert", "Complete all categories", 600},
}

// LookupAchievement returns the definition of id.
func LookupAchievement(id AchievementID) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
