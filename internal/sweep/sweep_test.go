package sweep_test

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/fungo/internal/domain/baserunning"
	"github.com/okian/fungo/internal/sweep"
	logging "github.com/okian/fungo/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestPermutations(t *testing.T) {
	convey.Convey("Given a set of player ids", t, func() {
		ids := []string{"a", "b", "c"}

		convey.Convey("When enumerating without a limit", func() {
			perms := sweep.Permutations(ids, 0)

			convey.Convey("Then all orderings should appear once, lexicographically", func() {
				convey.So(perms, convey.ShouldHaveLength, 6)
				convey.So(perms[0], convey.ShouldResemble, []string{"a", "b", "c"})
				convey.So(perms[1], convey.ShouldResemble, []string{"a", "c", "b"})
				convey.So(perms[5], convey.ShouldResemble, []string{"c", "b", "a"})

				seen := make(map[string]struct{})
				for _, p := range perms {
					seen[strings.Join(p, " ")] = struct{}{}
				}
				convey.So(seen, convey.ShouldHaveLength, 6)
			})
		})

		convey.Convey("When a limit caps the enumeration", func() {
			perms := sweep.Permutations(ids, 4)

			convey.Convey("Then only the first orderings should be produced", func() {
				convey.So(perms, convey.ShouldHaveLength, 4)
				convey.So(perms[0], convey.ShouldResemble, []string{"a", "b", "c"})
				convey.So(perms[3], convey.ShouldResemble, []string{"b", "c", "a"})
			})
		})

		convey.Convey("When the input is empty", func() {
			convey.So(sweep.Permutations(nil, 0), convey.ShouldBeEmpty)
		})

		convey.Convey("When the leadoff slot is fixed", func() {
			perms := sweep.FixedLeadoffPermutations(ids, 0)

			convey.Convey("Then every ordering keeps the first id on top", func() {
				convey.So(perms, convey.ShouldHaveLength, 2)
				convey.So(perms[0], convey.ShouldResemble, []string{"a", "b", "c"})
				convey.So(perms[1], convey.ShouldResemble, []string{"a", "c", "b"})
			})
		})
	})
}

func writeWhiffRoster(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("players:\n")
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&b, `  - id: p%d
    name: Player %d
    stats:
      plate_appearances: 600
      at_bats: 600
      strikeouts: 600
      gb_fb_ratio: 1.0
`, i, i)
	}
	b.WriteString("lineup:\n")
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&b, "  - p%d\n", i)
	}

	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestSweepRun(t *testing.T) {
	convey.Convey("Given a capped sweep over a deterministic roster", t, func() {
		_ = logging.Init()
		ctx := context.Background()

		outPath := filepath.Join(t.TempDir(), "lineups.csv")
		cfg := &sweep.Config{
			RosterPath: writeWhiffRoster(t),
			OutputCSV:  outPath,
			Games:      2,
			Workers:    3,
			Seed:       42,
			TopN:       2,
			MaxLineups: 5,
			Rules:      baserunning.DefaultRules(),
		}

		convey.Convey("When the sweep runs to completion", func() {
			err := sweep.Run(ctx, cfg)

			convey.Convey("Then the CSV should hold every evaluated lineup", func() {
				convey.So(err, convey.ShouldBeNil)

				f, openErr := os.Open(outPath)
				convey.So(openErr, convey.ShouldBeNil)
				defer f.Close()

				rows, readErr := csv.NewReader(f).ReadAll()
				convey.So(readErr, convey.ShouldBeNil)
				// Header, five lineups, grand total.
				convey.So(rows, convey.ShouldHaveLength, 7)
				convey.So(rows[0][0], convey.ShouldEqual, "P1_ID")
				convey.So(rows[6][0], convey.ShouldEqual, "GRAND_TOTAL_RUNS")
				convey.So(rows[6][9], convey.ShouldEqual, "0")
				for i := 1; i <= 5; i++ {
					convey.So(rows[i][9], convey.ShouldEqual, "0.0000")
				}
			})
		})

		convey.Convey("When the roster path is wrong", func() {
			cfg.RosterPath = filepath.Join(t.TempDir(), "missing.yaml")
			err := sweep.Run(ctx, cfg)

			convey.Convey("Then the sweep should fail up front", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
