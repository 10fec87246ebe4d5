package taxonomy

import (
	"strings"

	"github.com/rperrot/recruteo/pkg/nlp"
)

// Match — победившая подкатегория и её суммарный балл.
type Match struct {
	SubCategory SubCategory
	Score       int
}

// keywordWeight — вклад одного совпавшего ключа: 10 за каждый токен, чтобы
// составной ключ ("marketing digital") перевешивал одиночный на той же
// подкатегории.
const keywordWeight = 10

// BestMatch подбирает подкатегорию под сырое название должности.
// Для каждой подкатегории с непустым набором ключей суммируются баллы всех
// ключей, входящих в нормализованный заголовок как подстрока. Максимум
// обновляется только при строгом улучшении, поэтому при равенстве очков
// побеждает первая встреченная подкатегория. Нет совпадений — nil.
func BestMatch(title string, subs []SubCategory) *Match {
	normalized := nlp.Normalize(title)
	if normalized == "" {
		return nil
	}

	var best *Match
	for i := range subs {
		sub := subs[i]
		if len(sub.Keywords) == 0 {
			continue
		}
		score := 0
		for _, kw := range sub.Keywords {
			nkw := nlp.Normalize(kw)
			if nkw == "" {
				continue
			}
			if strings.Contains(normalized, nkw) {
				score += keywordWeight * nlp.TokenCount(nkw)
			}
		}
		if score > 0 && (best == nil || score > best.Score) {
			best = &Match{SubCategory: sub, Score: score}
		}
	}
	return best
}
