package feed

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobil-koeln/treni-cli/internal/models"
)

const sampleBoard = `# RFI station board
vettore=TRENITALIA|treno=9412|destinazione=Milano Centrale|orario=14:32|binario=3|categoria=FR
vettore=ITALO|treno=8905|destinazione=Napoli Centrale|orario=14:40|ritardo=7|binario=
vettore=TRENORD|treno=2611|destinazione=Bergamo|orario=14:45|stato=BUS|dettagli=non disponibili

vettore=TRENITALIA|destinazione=Roma Termini|orario=14:50
`

func TestParse_SampleBoard(t *testing.T) {
	entries, err := Parse(sampleBoard)
	require.NoError(t, err)

	got := slices.Collect(entries)
	require.Len(t, got, 4)

	first := got[0]
	assert.Equal(t, "9412", first.Number.OrElse(""))
	assert.Equal(t, "Milano Centrale", first.Destination.OrElse(""))
	assert.Equal(t, "14:32", first.Time.OrElse(""))
	assert.False(t, first.Delay.IsPresent())

	// Explicit empty platform stays distinct from a missing one
	second := got[1]
	assert.True(t, second.Platform.IsPresent())
	assert.Equal(t, "", second.Platform.OrElse("x"))
	assert.False(t, first.Details.IsPresent())
	assert.Equal(t, "non disponibili", got[2].Details.OrElse(""))

	assert.False(t, got[3].Number.IsPresent())
}

func TestParse_EmptyPayload(t *testing.T) {
	for _, payload := range []string{"", "   ", "\n\n", "# only a header\n"} {
		entries, err := Parse(payload)
		require.NoError(t, err, "payload %q", payload)
		assert.Empty(t, slices.Collect(entries))
	}
}

func TestParse_HTMLErrorPage(t *testing.T) {
	payload := "<!DOCTYPE html>\n<html><head><title>Servizio non disponibile</title></head><body>503</body></html>"

	_, err := Parse(payload)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFeed))

	var mfe *MalformedFeedError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, 2, mfe.Lines)
	assert.Contains(t, err.Error(), "markup")
}

func TestParse_NoRecords(t *testing.T) {
	_, err := Parse("Service Unavailable\nplease retry later\n")
	assert.ErrorIs(t, err, ErrMalformedFeed)
}

func TestParse_SkipsBadRecords(t *testing.T) {
	payload := "garbage line\n" +
		"treno=1|destinazione=Torino Porta Nuova|orario=10:00\n" +
		"colore=rosso|forma=tonda\n" + // no recognized key
		"treno=2|orario=10:05\n" + // no destination, still a record
		"treno=3|destinazione=Genova Piazza Principe|orario=10:10\n"

	entries, err := Parse(payload)
	require.NoError(t, err)

	got := slices.Collect(entries)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Number.OrElse(""))
	assert.Equal(t, "2", got[1].Number.OrElse(""))
	assert.False(t, got[1].Destination.IsPresent())
	assert.Equal(t, "3", got[2].Number.OrElse(""))
}

func TestParse_UnknownKeysOnly(t *testing.T) {
	_, err := Parse("colore=rosso\nforma=tonda\n")
	assert.ErrorIs(t, err, ErrMalformedFeed)
}

func TestParse_FieldRules(t *testing.T) {
	payload := " TRENO = 77 | Destinazione=Bari Centrale|orario=08:15|noise|=x|treno=99|colore=rosso\r\n"

	entries, err := Parse(payload)
	require.NoError(t, err)

	got := slices.Collect(entries)
	require.Len(t, got, 1)
	assert.Equal(t, "77", got[0].Number.OrElse(""), "keys are case-insensitive and the first value wins")
	assert.Equal(t, "Bari Centrale", got[0].Destination.OrElse(""))
	assert.Equal(t, "08:15", got[0].Time.OrElse(""))
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse(sampleBoard)
	require.NoError(t, err)
	second, err := Parse(sampleBoard)
	require.NoError(t, err)

	a := slices.Collect(first)
	b := slices.Collect(second)
	assert.Equal(t, a, b)

	// The same sequence is restartable
	assert.Equal(t, a, slices.Collect(first))
}

func TestParse_StopsEarly(t *testing.T) {
	entries, err := Parse(sampleBoard)
	require.NoError(t, err)

	var seen []models.RawEntry
	for e := range entries {
		seen = append(seen, e)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2)
}

func TestMalformedFeedError_Snippet(t *testing.T) {
	long := "<html>" + string(make([]byte, 100))
	err := newMalformedFeedError("markup instead of records", long, 1)
	assert.Len(t, []rune(err.Snippet), snippetLen)
}
