package model

import "math/rand"

// CelebrationMessages are shown when every task of the day is done.
var CelebrationMessages = []string{
	"わーい！ぜんぶできたね！すごいよ！",
	"やったー！みんなできたね！",
	"さあ、いっぱいあそぼう！",
	"かんぺき！きみってすごいね！",
	"ぜんぶできちゃった！さいこう！",
	"よくがんばったね！えらいよ！",
}

// TaskCompleteMessages are shown when a single task is checked off.
var TaskCompleteMessages = []string{
	"やったね！",
	"すごいよ！",
	"えらいね！",
	"がんばったね！",
	"できたね！",
	"いいね！",
}

// RandomCelebration picks one celebration message.
func RandomCelebration() string {
	return CelebrationMessages[rand.Intn(len(CelebrationMessages))]
}

// RandomTaskComplete picks one task-completion message.
func RandomTaskComplete() string {
	return TaskCompleteMessages[rand.Intn(len(TaskCompleteMessages))]
}
