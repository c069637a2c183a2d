package priority

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// KeywordTables — словари ключевых слов по языкам (код языка → слова).
// Таблицы являются внешними данными: дефолты ниже можно целиком заменить
// загрузкой из JSON-файла через LoadTables.
type KeywordTables map[string][]string

// DefaultPriorityTables возвращает встроенные таблицы приоритетных слов,
// по которым гражданский переводится в needs_help
func DefaultPriorityTables() KeywordTables {
	return KeywordTables{
		"en": {"help", "emergency", "trapped", "fire", "injured", "hurt", "bleeding", "unconscious", "heart", "attack", "stroke", "danger", "dying"},
		"tr": {"yardım", "acil", "mahsur", "yangın", "yaralı", "kanama", "baygın", "kalp", "tehlike"},
	}
}

// DefaultMedicalTables возвращает встроенные таблицы медицинских слов
// для расчета приоритета
func DefaultMedicalTables() KeywordTables {
	return KeywordTables{
		"en": {"bleeding", "unconscious", "heart", "breathing", "chest", "pain", "broken", "burn"},
		"tr": {"kanama", "baygın", "kalp", "nefes", "göğüs", "ağrı", "kırık", "yanık"},
	}
}

// tablesFile — формат JSON-файла с внешними таблицами ключевых слов
type tablesFile struct {
	Priority KeywordTables `json:"priority"`
	Medical  KeywordTables `json:"medical"`
}

// LoadTables загружает таблицы приоритетных и медицинских слов из JSON-файла
func LoadTables(path string) (priority, medical KeywordTables, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("priority: could not read keyword tables: %w", err)
	}

	var f tablesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("priority: could not parse keyword tables: %w", err)
	}

	if len(f.Priority) == 0 || len(f.Medical) == 0 {
		return nil, nil, fmt.Errorf("priority: keyword tables file %s must define both priority and medical tables", path)
	}

	return f.Priority, f.Medical, nil
}

// containsKeyword проверяет вхождение слова в транскрипт или теги.
// Сравнение регистронезависимое, по подстроке, не по точному совпадению.
// Слово тоже приводится к нижнему регистру: внешние таблицы могут содержать
// записи в любом регистре.
func containsKeyword(keyword, transcript string, tags []string) bool {
	needle := strings.ToLower(keyword)
	if strings.Contains(transcript, needle) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// MatchesAny возвращает true, если хотя бы одно слово любой языковой таблицы
// встречается в транскрипте или тегах
func (t KeywordTables) MatchesAny(transcript string, tags []string) bool {
	lower := strings.ToLower(transcript)
	for _, keywords := range t {
		for _, keyword := range keywords {
			if containsKeyword(keyword, lower, tags) {
				return true
			}
		}
	}
	return false
}

// CountDistinct возвращает число различных слов таблиц, встретившихся
// в транскрипте или тегах, но не больше cap
func (t KeywordTables) CountDistinct(transcript string, tags []string, cap int) int {
	lower := strings.ToLower(transcript)
	count := 0
	for _, keywords := range t {
		for _, keyword := range keywords {
			if containsKeyword(keyword, lower, tags) {
				count++
				if count >= cap {
					return cap
				}
			}
		}
	}
	return count
}
