package rosterdb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlab/champnet/builder"
	"github.com/champlab/champnet/rosterdb"
)

const sampleCSV = `Season,Team,Player
1999,San Antonio Spurs,Tim Duncan
1999,San Antonio Spurs,David Robinson
2003,San Antonio Spurs,Tim Duncan
2003,San Antonio Spurs,Tony Parker
`

// writeCSV drops contents into a temp file and returns its path.
func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rosters.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

// openStore opens a store on a temp database and closes it with the test.
func openStore(t *testing.T) *rosterdb.Store {
	t.Helper()
	s, err := rosterdb.Open(filepath.Join(t.TempDir(), "rosters.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestReadCSV_ParsesRows(t *testing.T) {
	rows, err := rosterdb.ReadCSV(writeCSV(t, sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, rosterdb.Row{Season: "1999", Team: "San Antonio Spurs", Player: "Tim Duncan"}, rows[0])
}

func TestReadCSV_BadHeader(t *testing.T) {
	_, err := rosterdb.ReadCSV(writeCSV(t, "Year,Club,Name\n1999,SAS,Tim Duncan\n"))
	assert.ErrorIs(t, err, rosterdb.ErrBadHeader)
}

func TestReadCSV_HeaderCaseInsensitive(t *testing.T) {
	rows, err := rosterdb.ReadCSV(writeCSV(t, "season,TEAM,Player\n1999,SAS,Tim Duncan\n"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := rosterdb.ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestImportCSV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	added, err := s.ImportCSV(ctx, writeCSV(t, sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	recs, err := s.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []builder.Record{
		{GroupID: "1999|San Antonio Spurs", Member: "Tim Duncan"},
		{GroupID: "1999|San Antonio Spurs", Member: "David Robinson"},
		{GroupID: "2003|San Antonio Spurs", Member: "Tim Duncan"},
		{GroupID: "2003|San Antonio Spurs", Member: "Tony Parker"},
	}, recs)
}

func TestImportCSV_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	path := writeCSV(t, sampleCSV)

	added, err := s.ImportCSV(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	// A second import of the same file adds nothing and keeps replay order.
	added, err = s.ImportCSV(ctx, path)
	require.NoError(t, err)
	assert.Zero(t, added)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestInsert_ThenRecordsOrder(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	rows := []rosterdb.Row{
		{Season: "2023", Team: "Denver Nuggets", Player: "Nikola Jokic"},
		{Season: "2023", Team: "Denver Nuggets", Player: "Jamal Murray"},
		{Season: "2024", Team: "Boston Celtics", Player: "Jayson Tatum"},
	}
	for _, r := range rows {
		require.NoError(t, s.Insert(ctx, r))
	}

	recs, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "2023|Denver Nuggets", recs[0].GroupID)
	assert.Equal(t, "Nikola Jokic", recs[0].Member)
	assert.Equal(t, "2024|Boston Celtics", recs[2].GroupID)
}

func TestRecordsFromRows(t *testing.T) {
	recs := rosterdb.RecordsFromRows([]rosterdb.Row{
		{Season: "1999", Team: "SAS", Player: "Tim Duncan"},
	})
	assert.Equal(t, []builder.Record{
		{GroupID: "1999|SAS", Member: "Tim Duncan"},
	}, recs)
}

func TestRecords_FeedsBuilder(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	_, err := s.ImportCSV(ctx, writeCSV(t, sampleCSV))
	require.NoError(t, err)

	recs, err := s.Records(ctx)
	require.NoError(t, err)

	g, err := builder.Build(recs)
	require.NoError(t, err)

	w, err := g.NodeWeight("Tim Duncan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)

	ew, ok := g.EdgeWeight("Tim Duncan", "Tony Parker")
	assert.True(t, ok)
	assert.Equal(t, int64(1), ew)
}
