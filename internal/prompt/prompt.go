// Package prompt runs the line-mode genre picker used when no terminal UI is
// available.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/movierec/internal/logging"
	"github.com/llehouerou/movierec/internal/recommend"
	"github.com/llehouerou/movierec/internal/ui/render"
)

const ruleWidth = 80

// Prompt asks for a genre on in and writes recommendations to out.
type Prompt struct {
	engine recommend.Engine
	movies int
	limit  int
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a prompt. movies is the catalog size shown in the summary.
func New(engine recommend.Engine, movies, limit int, in io.Reader, out io.Writer) *Prompt {
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	return &Prompt{
		engine: engine,
		movies: movies,
		limit:  limit,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run lists the genres, asks until a known genre (or its list number) is
// entered, then prints its recommendations. End of input or a cancelled
// context ends the session without error; a blocked read does not delay
// cancellation.
func (p *Prompt) Run(ctx context.Context) error {
	genres := p.engine.Genres()

	p.printf("\nAvailable genres:\n")
	for i, g := range genres {
		p.printf("%d. %s\n", i+1, g)
	}
	p.printf("(%s genres across %s movies)\n",
		humanize.Comma(int64(len(genres))), humanize.Comma(int64(p.movies)))

	done := make(chan struct{})
	defer close(done)
	lines := p.scan(done)

	for {
		if ctx.Err() != nil {
			p.printf("\nProgram terminated by user.\n")
			return nil
		}

		p.printf("\nEnter a genre from the list above: ")
		var line string
		select {
		case <-ctx.Done():
			p.printf("\nProgram terminated by user.\n")
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := p.in.Err(); err != nil {
					return fmt.Errorf("reading genre: %w", err)
				}
				p.printf("\nProgram terminated by user.\n")
				return nil
			}
			line = l
		}

		genre, ok := resolve(genres, line)
		if !ok {
			logging.Debug().Str("input", line).Msg("rejected genre")
			p.printf("Invalid genre. Please choose from the available list.\n")
			continue
		}

		p.print(genre, p.engine.Recommend(genre, p.limit))
		return nil
	}
}

// scan feeds input lines to the returned channel until input ends or done
// is closed. The channel is closed when input ends.
func (p *Prompt) scan(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for p.in.Scan() {
			select {
			case lines <- p.in.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// resolve matches input against genres, by exact name first and then by
// 1-based list number.
func resolve(genres []string, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	for _, g := range genres {
		if g == input {
			return g, true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(genres) {
		return genres[n-1], true
	}
	return "", false
}

func (p *Prompt) print(genre string, recs []recommend.Recommendation) {
	if len(recs) == 0 {
		p.printf("No movies found for genre: %s\n", genre)
		return
	}

	rule := strings.Repeat("-", ruleWidth)
	p.printf("\nTop %d %s movies:\n%s\n", p.limit, genre, rule)
	for i, r := range recs {
		p.printf("%d. %s\n", i+1, render.TitleYear(r.Title, r.Year))
		p.printf("   Rating: %s/10\n", render.Rating(r.Rating))
		p.printf("   Description: %s\n", r.Description)
		p.printf("%s\n", rule)
	}
}

func (p *Prompt) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
