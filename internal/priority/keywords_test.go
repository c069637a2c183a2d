package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesAny_MixedCaseTableEntry(t *testing.T) {
	// Подготовка: внешняя таблица с записью не в нижнем регистре
	tables := KeywordTables{"en": {"Fire"}}

	// Проверки: регистр записи таблицы не влияет на совпадение
	assert.True(t, tables.MatchesAny("there is a fire downtown", nil))
	assert.True(t, tables.MatchesAny("", []string{"fire"}))
	assert.True(t, tables.MatchesAny("FIRE spreading fast", nil))
}

func TestMatchesAny_MixedCaseTags(t *testing.T) {
	// Подготовка
	tables := KeywordTables{"en": {"bleeding"}}

	// Проверки
	assert.True(t, tables.MatchesAny("", []string{"Bleeding"}))
	assert.False(t, tables.MatchesAny("", []string{"dizzy"}))
}

func TestCountDistinct_MixedCaseTableEntries(t *testing.T) {
	// Подготовка
	tables := KeywordTables{"en": {"Bleeding", "UNCONSCIOUS", "chest"}}

	// Действие
	count := tables.CountDistinct("he is bleeding and unconscious", nil, 10)

	// Проверки: обе записи совпали независимо от регистра
	assert.Equal(t, 2, count)
}
