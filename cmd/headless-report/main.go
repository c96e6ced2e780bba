package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/AhmedSherif9/HideAndSeek/internal/config"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
	"github.com/AhmedSherif9/HideAndSeek/internal/session"
	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

// plan is what every run replays: ticks on the clock and an avatar move
// every moveEvery ticks, taken in order from moves.
type plan struct {
	ticks     int
	moves     []moveStep
	moveEvery int
	halt      bool
}

// moveStep is one letter of the move script. wait skips a slot.
type moveStep struct {
	dir  grid.Direction
	wait bool
}

type runStats struct {
	runIndex int

	outcome   world.Outcome
	over      bool
	collected int
	total     int

	ticks   int
	moves   int
	blocked int
	caught  int
	wraps   int

	firstPickupTick int
	firstCaughtTick int
	overTick        int

	digest string
}

func main() {
	var (
		scenePath string
		runs      int
		ticks     int
		moves     string
		moveEvery int
		parallel  int
		dumpScene bool
		verbose   bool
	)
	flag.StringVar(&scenePath, "scene", "", "scene YAML (empty for the built-in scene)")
	flag.IntVar(&runs, "runs", 5, "number of independent runs")
	flag.IntVar(&ticks, "ticks", 600, "ticks per run")
	flag.StringVar(&moves, "moves", "", "avatar move script: N/E/S/W per slot, '.' waits")
	flag.IntVar(&moveEvery, "move-every", 1, "ticks between avatar moves")
	flag.IntVar(&parallel, "parallel", 4, "runs in flight at once")
	flag.BoolVar(&dumpScene, "dump-scene", false, "print the resolved scene as YAML and exit")
	flag.BoolVar(&verbose, "v", false, "log session events to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	sc, err := config.Load(scenePath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	if dumpScene {
		out, err := config.Marshal(sc)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	if moveEvery <= 0 {
		fmt.Println("error: -move-every must be > 0")
		os.Exit(2)
	}
	steps, err := parseMoves(moves)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}
	p := plan{ticks: ticks, moves: steps, moveEvery: moveEvery, halt: sc.Session.HaltOnLose}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("scene=%s runs=%d ticks=%d moves=%d move_every=%d halt_on_lose=%t\n\n",
		sc.Name, runs, ticks, len(steps), moveEvery, p.halt)

	all, err := runAll(context.Background(), sc, p, runs, parallel)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	for _, rs := range all {
		printRun(os.Stdout, rs)
	}
	printAggregate(os.Stdout, all)
	if !deterministic(all) {
		os.Exit(1)
	}
}

// parseMoves reads a move script. Whitespace is ignored.
func parseMoves(s string) ([]moveStep, error) {
	var out []moveStep
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', ',':
			continue
		case '.':
			out = append(out, moveStep{wait: true})
			continue
		}
		d, err := grid.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move script at %d: %w", i, err)
		}
		out = append(out, moveStep{dir: d})
	}
	return out, nil
}

// runAll replays p on runs independent sessions, at most parallel at a
// time. Results come back in run order.
func runAll(ctx context.Context, sc config.Scene, p plan, runs, parallel int) ([]runStats, error) {
	all := make([]runStats, runs)
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range runs {
		g.Go(func() error {
			rs, err := runOnce(ctx, i+1, sc, p)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			all[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// runOnce builds a fresh world from sc and plays p against it. Moves are
// issued before the tick of the slot they fall on.
func runOnce(ctx context.Context, runIndex int, sc config.Scene, p plan) (runStats, error) {
	w, cam, err := config.Build(sc)
	if err != nil {
		return runStats{}, err
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := session.New(w, cam,
		session.WithNotifier(session.Nop{}),
		session.WithHaltOnLose(p.halt),
		session.WithLogger(quiet),
	)
	if err != nil {
		return runStats{}, err
	}

	next := 0
	for t := 0; t < p.ticks && !s.Over(); t++ {
		if err := ctx.Err(); err != nil {
			return runStats{}, err
		}
		if next < len(p.moves) && t%p.moveEvery == 0 {
			m := p.moves[next]
			next++
			if !m.wait {
				if _, err := s.Move(m.dir); err != nil {
					return runStats{}, err
				}
			}
		}
		if !s.Over() {
			s.Tick()
		}
	}
	return collect(runIndex, s), nil
}

// collect reduces a finished session to the numbers the report prints.
func collect(runIndex int, s *session.Session) runStats {
	f := s.Snapshot()
	st := s.Stats()
	events := s.Events()
	return runStats{
		runIndex:        runIndex,
		outcome:         f.Outcome,
		over:            f.Over,
		collected:       f.Collected,
		total:           f.Total,
		ticks:           st.Ticks,
		moves:           st.Moves,
		blocked:         st.Blocked,
		caught:          st.Caught,
		wraps:           st.Wraps,
		firstPickupTick: firstTick(events, "pickup", "collected"),
		firstCaughtTick: firstTick(events, "outcome", "caught"),
		overTick:        firstTick(events, "outcome", "over"),
		digest:          s.TraceDigest(),
	}
}

// firstTick is the tick of the first matching event, or -1.
func firstTick(log *session.EventLog, category, key string) int {
	if e, ok := log.FirstOf(category, key); ok {
		return e.Tick
	}
	return -1
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d ---\n", rs.runIndex)
	fmt.Fprintf(w, "outcome=%s over=%t collected=%d/%d\n", rs.outcome, rs.over, rs.collected, rs.total)
	fmt.Fprintf(w, "phase_markers: first_pickup=%d first_caught=%d over=%d\n",
		rs.firstPickupTick, rs.firstCaughtTick, rs.overTick)
	fmt.Fprintf(w, "event_totals: ticks=%d moves=%d blocked=%d caught=%d wraps=%d\n",
		rs.ticks, rs.moves, rs.blocked, rs.caught, rs.wraps)
	fmt.Fprintf(w, "trace=%s\n\n", rs.digest)
}

func printAggregate(w io.Writer, all []runStats) {
	outcomes := map[string]int{}
	digests := map[string]struct{}{}
	totalCollected := 0
	totalCaught := 0
	for _, rs := range all {
		outcomes[rs.outcome.String()]++
		digests[rs.digest] = struct{}{}
		totalCollected += rs.collected
		totalCaught += rs.caught
	}

	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d\n", len(all))
	fmt.Fprintf(w, "outcomes: %s\n", joinCounts(outcomes))
	fmt.Fprintf(w, "avg_per_run: collected=%.1f caught=%.1f\n",
		avg(totalCollected, len(all)), avg(totalCaught, len(all)))
	if deterministic(all) {
		fmt.Fprintf(w, "traces: identical (%d runs)\n", len(all))
	} else {
		fmt.Fprintf(w, "traces: DIVERGED (%d distinct)\n", len(digests))
	}
}

// deterministic reports whether every run produced the same trace.
func deterministic(all []runStats) bool {
	if len(all) == 0 {
		return true
	}
	for _, rs := range all[1:] {
		if rs.digest != all[0].digest {
			return false
		}
	}
	return true
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, " ")
}
