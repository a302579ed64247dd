package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfields/resume-screener/internal/extract"
	"github.com/jfields/resume-screener/internal/types"
)

func newExtractor(v *types.SkillVocabulary) *extract.SkillExtractor {
	return extract.NewSkillExtractor(v)
}

func TestSkills_PartitionsJobSkills(t *testing.T) {
	e := newExtractor(&types.SkillVocabulary{Skills: []string{"python", "sql", "docker"}})

	result := Skills([]string{"python", "docker"}, "Need Python, SQL and Docker.", e)

	assert.Equal(t, []string{"docker", "python"}, result.Matched)
	assert.Equal(t, []string{"sql"}, result.Missing)
}

func TestSkills_CoverageRoundedToTwoDecimals(t *testing.T) {
	e := newExtractor(&types.SkillVocabulary{Skills: []string{"python", "sql", "docker"}})

	result := Skills([]string{"python", "docker"}, "Python, SQL and Docker required.", e)

	assert.Equal(t, 66.67, result.Coverage)
}

func TestSkills_EmptyJobTextYieldsZeroCoverage(t *testing.T) {
	e := newExtractor(&types.SkillVocabulary{Skills: []string{"python"}})

	result := Skills([]string{"python"}, "", e)

	assert.Equal(t, 0.0, result.Coverage)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestSkills_MembershipIsCaseInsensitive(t *testing.T) {
	e := newExtractor(&types.SkillVocabulary{Skills: []string{"python"}})

	result := Skills([]string{"  PYTHON "}, "python needed", e)

	assert.Equal(t, []string{"python"}, result.Matched)
	assert.Equal(t, 100.0, result.Coverage)
}

func TestSkills_FullCoverage(t *testing.T) {
	e := newExtractor(&types.SkillVocabulary{Skills: []string{"go", "sql"}})

	result := Skills([]string{"go", "sql"}, "Go and SQL.", e)

	assert.Equal(t, 100.0, result.Coverage)
	assert.Empty(t, result.Missing)
}

func TestSkills_CategoryBreakdownCounts(t *testing.T) {
	v := &types.SkillVocabulary{
		Skills: []string{"python", "sql", "aws"},
		Categories: map[string][]string{
			"Programming": {"python"},
			"Data":        {"sql"},
			"Cloud":       {"aws"},
		},
	}
	e := newExtractor(v)

	result := Skills([]string{"python"}, "Python, SQL and AWS.", e)

	require.Len(t, result.Categories, 3)
	assert.Equal(t, types.CategoryCoverage{Name: "Cloud", Matched: 0, Missing: 1}, result.Categories[0])
	assert.Equal(t, types.CategoryCoverage{Name: "Data", Matched: 0, Missing: 1}, result.Categories[1])
	assert.Equal(t, types.CategoryCoverage{Name: "Programming", Matched: 1, Missing: 0}, result.Categories[2])
}

func TestSkills_NoCategoriesYieldsNilBreakdown(t *testing.T) {
	e := newExtractor(&types.SkillVocabulary{Skills: []string{"python"}})

	result := Skills([]string{"python"}, "python", e)

	assert.Nil(t, result.Categories)
}
