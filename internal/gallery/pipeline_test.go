package gallery

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

func at(sec int64) *time.Time {
	t := time.Unix(sec, 0).UTC()
	return &t
}

func ids(records []models.Artwork) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func fixture() []models.Artwork {
	return []models.Artwork{
		{ID: "a", Prompt: "Cyberpunk city street at night", Description: "Neo-Tokyo", Model: "Midjourney v6", Status: models.StatusApproved, CreatedAt: at(300)},
		{ID: "b", Prompt: "A cute robot gardener", Description: "Eco-bot 3000", Model: "DALL-E 3", Status: models.StatusLegacy, CreatedAt: at(100)},
		{ID: "c", Prompt: "Misty forest", Description: "Morning", Model: "Midjourney v6", Status: models.StatusPending, CreatedAt: at(400)},
		{ID: "d", Prompt: "Desert caravan", Description: "Dunes", Model: "Stable Diffusion", Status: models.StatusRejected, CreatedAt: at(200)},
		{ID: "e", Prompt: "Ocean CITY lights", Description: "Harbor", Model: "DALL-E 3", Status: models.StatusApproved},
	}
}

func TestDerive_Visibility(t *testing.T) {
	records := fixture()

	public := Derive(records, Query{Visibility: VisibilityPublic})
	for _, r := range public {
		assert.NotEqual(t, models.StatusPending, r.Status)
		assert.NotEqual(t, models.StatusRejected, r.Status)
	}
	assert.ElementsMatch(t, []string{"a", "b", "e"}, ids(public))

	admin := Derive(records, Query{Visibility: VisibilityAdmin})
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, ids(admin))
}

func TestDerive_Search(t *testing.T) {
	records := fixture()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "prompt case-insensitive", search: "city", want: []string{"a", "e"}},
		{name: "description", search: "eco-BOT", want: []string{"b"}},
		{name: "model", search: "dall-e", want: []string{"b", "e"}},
		{name: "no match", search: "zebra", want: []string{}},
		{name: "hidden records never match", search: "forest", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(records, Query{Search: tt.search, Visibility: VisibilityPublic})
			assert.ElementsMatch(t, tt.want, ids(got))
			for _, r := range got {
				hay := strings.ToLower(r.Prompt + "\x00" + r.Description + "\x00" + r.Model)
				assert.Contains(t, hay, strings.ToLower(tt.search))
			}
		})
	}
}

func TestDerive_EmptySearchReturnsVisibleSet(t *testing.T) {
	records := fixture()
	assert.Equal(t,
		Derive(records, Query{Visibility: VisibilityPublic}),
		Derive(records, Query{Search: "", Model: AllModels, Visibility: VisibilityPublic}),
	)
}

func TestDerive_ModelFilter(t *testing.T) {
	records := fixture()

	got := Derive(records, Query{Model: "DALL-E 3", Visibility: VisibilityPublic})
	assert.Equal(t, []string{"b", "e"}, ids(got))

	got = Derive(records, Query{Model: "dall-e 3", Visibility: VisibilityPublic})
	assert.Empty(t, got, "model filter is exact")

	got = Derive(records, Query{Model: AllModels, Visibility: VisibilityAdmin})
	assert.Len(t, got, len(records))
}

func TestDerive_Sort(t *testing.T) {
	records := fixture()

	newest := Derive(records, Query{Visibility: VisibilityAdmin})
	assert.Equal(t, []string{"c", "a", "d", "b", "e"}, ids(newest), "missing timestamp sorts last")

	oldest := Derive(records, Query{Sort: SortOldest, Visibility: VisibilityAdmin})
	assert.Equal(t, []string{"e", "b", "d", "a", "c"}, ids(oldest))
}

func TestDerive_OldestReversedIsNewest(t *testing.T) {
	var records []models.Artwork
	for i := 0; i < 50; i++ {
		records = append(records, models.Artwork{
			ID:        fmt.Sprintf("r%d", i),
			Model:     "m",
			CreatedAt: at(int64((i * 7919) % 1000)),
		})
	}

	oldest := Derive(records, Query{Sort: SortOldest})
	newest := Derive(records, Query{Sort: SortNewest})
	slices.Reverse(oldest)
	assert.Equal(t, ids(newest), ids(oldest))
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	before := ids(records)

	_ = Derive(records, Query{Sort: SortOldest, Visibility: VisibilityAdmin})
	_ = Derive(records, Query{Sort: SortNewest, Visibility: VisibilityPublic, Search: "city"})

	assert.Equal(t, before, ids(records))
}

func TestDerive_LegacyTreatedAsApproved(t *testing.T) {
	legacy := models.Artwork{ID: "x", Model: "m", Status: models.StatusLegacy, CreatedAt: at(10)}
	approved := models.Artwork{ID: "x", Model: "m", Status: models.StatusApproved, CreatedAt: at(10)}
	other := models.Artwork{ID: "y", Model: "m", Status: models.StatusApproved, CreatedAt: at(20)}

	for _, sort := range []SortOrder{SortNewest, SortOldest} {
		a := Derive([]models.Artwork{legacy, other}, Query{Sort: sort})
		b := Derive([]models.Artwork{approved, other}, Query{Sort: sort})
		assert.Equal(t, ids(a), ids(b))
	}
}

func TestDerive_ApprovedRecordBecomesPublic(t *testing.T) {
	rec := models.Artwork{ID: "p", Model: "m", Status: models.StatusPending, CreatedAt: at(1)}
	assert.Empty(t, Derive([]models.Artwork{rec}, Query{}))

	rec.Status = models.StatusApproved
	assert.Equal(t, []string{"p"}, ids(Derive([]models.Artwork{rec}, Query{})))
}

func TestModels(t *testing.T) {
	tests := []struct {
		name    string
		records []models.Artwork
		want    []string
	}{
		{name: "empty", records: nil, want: []string{AllModels}},
		{name: "discovery order", records: fixture(), want: []string{AllModels, "Midjourney v6", "DALL-E 3", "Stable Diffusion"}},
		{
			name:    "model literally All",
			records: []models.Artwork{{Model: "Zeta"}, {Model: AllModels}, {Model: "Alpha"}},
			want:    []string{AllModels, "Zeta", "Alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Models(tt.records)
			require.NotEmpty(t, got)
			assert.Equal(t, AllModels, got[0])
			assert.Equal(t, 1, strings.Count(strings.Join(got, "\n")+"\n", AllModels+"\n"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortOldest, ParseSortOrder("oldest"))
	assert.Equal(t, SortOldest, ParseSortOrder(" Oldest "))
	assert.Equal(t, SortNewest, ParseSortOrder(""))
	assert.Equal(t, SortNewest, ParseSortOrder("popular"))
}
