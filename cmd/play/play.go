package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/atteraisanen/MovieGuessr/internal/client"
	"github.com/atteraisanen/MovieGuessr/internal/daykey"
	"github.com/atteraisanen/MovieGuessr/internal/game"
	"github.com/atteraisanen/MovieGuessr/internal/localstore"
)

const qrSize = 256

func run(ctx context.Context, cfg *Config) error {
	dir := cfg.dataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}
		dir = filepath.Join(base, "movieguessr")
	}

	store, err := localstore.New(dir)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	now := time.Now()
	dayKey := daykey.Key(now)
	if err := store.EvictStale(dayKey); err != nil {
		log.Printf("evicting stale sessions: %v", err)
	}

	rec, err := store.Load(dayKey)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	api := client.NewAPI(cfg.apiURL)

	var sess game.Session
	if rec != nil {
		sess = rec.Session
	} else {
		fmt.Println("Loading today's movie...")
		daily, err := api.GetDailyMovie(ctx)
		if errors.Is(err, client.ErrNoDailyMovie) {
			fmt.Println("No movie for today. Come back tomorrow! 🎥")
			return nil
		}
		if err != nil {
			log.Printf("daily movie fetch failed: %v", err)
			fmt.Println("MovieGuessr is unavailable right now. Please try again later.")
			return nil
		}
		sess = game.NewSession(*daily.Movie, daily.DaysPassed)
		if err := store.Save(dayKey, sess); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}

	p := &player{
		cfg:    cfg,
		store:  store,
		dayKey: dayKey,
		sess:   sess,
	}
	p.searcher = client.NewSearcher(api, cfg.searchDelay, p.showResults)
	defer p.searcher.Close()

	return p.loop(ctx)
}

type player struct {
	cfg      *Config
	store    *localstore.Store
	dayKey   string
	sess     game.Session
	searcher *client.Searcher

	mu         sync.Mutex
	candidates []client.Candidate
}

func (p *player) loop(ctx context.Context) error {
	fmt.Println("\n🎬 Guess the Movie")
	fmt.Printf("Day #%d\n", p.sess.DayIndex)
	if p.sess.Movie.Tagline != "" {
		fmt.Printf("%q\n", p.sess.Movie.Tagline)
	}
	p.render()

	if p.sess.Status.Terminal() {
		p.renderFinished()
		return nil
	}

	fmt.Println("\nType part of a title to search, a number to guess a result,")
	fmt.Println("/share for a summary, /quit to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return nil
		case line == "/share":
			p.printShare()
		case line == "":
			p.searcher.Query("")
		default:
			if n, err := strconv.Atoi(line); err == nil {
				p.guessCandidate(n)
				if p.sess.Status.Terminal() {
					p.renderFinished()
					return nil
				}
				continue
			}
			p.searcher.Query(line)
		}
	}
}

// showResults is the searcher's delivery callback; only the newest query's
// results ever arrive here.
func (p *player) showResults(query string, results []client.Candidate) {
	p.mu.Lock()
	p.candidates = results
	p.mu.Unlock()

	if query == "" {
		return
	}
	if len(results) == 0 {
		fmt.Printf("\nNo titles match %q.\n> ", query)
		return
	}
	fmt.Println()
	for i, c := range results {
		fmt.Printf("  %d. %s\n", i+1, c.Title)
	}
	fmt.Print("> ")
}

func (p *player) guessCandidate(n int) {
	p.mu.Lock()
	candidates := p.candidates
	p.mu.Unlock()

	if n < 1 || n > len(candidates) {
		fmt.Println("Pick a number from the search results first.")
		return
	}
	p.submit(candidates[n-1].Title)
}

// submit applies the guess and persists before anything is shown: a crash
// after this call must never lose a recorded guess.
func (p *player) submit(title string) {
	p.sess = p.sess.SubmitGuess(title)
	if err := p.store.Save(p.dayKey, p.sess); err != nil {
		log.Printf("saving session: %v", err)
	}

	p.mu.Lock()
	p.candidates = nil
	p.mu.Unlock()

	if fb := game.Feedback(p.sess); fb != "" {
		fmt.Println(fb)
	} else {
		fmt.Printf("Not %q. %d/%d attempts used.\n", title, p.sess.Attempts, game.MaxAttempts)
	}
	p.render()
}

func (p *player) render() {
	for _, clue := range game.Clues(p.sess.Movie, p.sess.Attempts) {
		fmt.Printf("  %s: %s\n", clue.Label, clue.Text)
	}
	if len(p.sess.Guesses) > 0 {
		fmt.Println("Your guesses:")
		for _, g := range p.sess.Guesses {
			mark := "❌"
			if g == p.sess.Movie.Title {
				mark = "✅"
			}
			fmt.Printf("  %s %s\n", mark, g)
		}
	}
}

func (p *player) renderFinished() {
	fmt.Println()
	p.printShare()
	fmt.Println("Come back tomorrow for a new movie! 🎥")
}

func (p *player) printShare() {
	text := game.Share(p.sess.DayIndex, p.sess.Attempts, p.sess.Guesses, p.sess.Movie.Title, p.cfg.pageURL)
	fmt.Println(text)

	if p.cfg.qrOut != "" {
		if err := qrcode.WriteFile(p.cfg.pageURL, qrcode.Medium, qrSize, p.cfg.qrOut); err != nil {
			log.Printf("writing share QR code: %v", err)
		} else {
			fmt.Printf("Share QR code written to %s\n", p.cfg.qrOut)
		}
	}
}
