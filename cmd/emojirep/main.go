// Command emojirep replaces :shortcode: tokens in text with the
// corresponding emoji.
//
//	$ echo "launch :rocket:" | emojirep
//	launch 🚀
//
// Unknown shortcodes pass through unchanged. With -suggest, near-miss
// shortcodes produce a hint on stderr:
//
//	$ echo ":rokcet:" | emojirep -suggest
//	:rokcet:
//	emojirep: unknown :rokcet:, did you mean :rocket:?
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gogpu/emoji"
)

func main() {
	suggest := flag.Bool("suggest", false, "print did-you-mean hints for unknown shortcodes")
	flag.Parse()

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("emojirep: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	replace(string(in), out, *suggest)
	if err := out.Flush(); err != nil {
		log.Fatalf("emojirep: %v", err)
	}
}

// replace writes s to w with every recognized :shortcode: token replaced
// by its emoji. A token is the text between two colons; when it is not a
// known shortcode the leading text is emitted as-is and scanning resumes
// at the closing colon, so overlapping candidates like ":maybe:rocket:"
// still resolve the trailing token.
func replace(s string, w io.Writer, suggest bool) {
	for {
		i := strings.IndexByte(s, ':')
		if i < 0 {
			break
		}
		j := strings.IndexByte(s[i+1:], ':')
		if j < 0 {
			break
		}
		m, n := i+1, i+1+j // s[m:n] is the candidate shortcode

		if e := emoji.GetByShortcode(s[m:n]); e != nil {
			io.WriteString(w, s[:i])
			io.WriteString(w, e.String())
			s = s[n+1:]
			continue
		}
		if suggest && s[m:n] != "" {
			if hint, ok := emoji.SuggestShortcode(s[m:n]); ok {
				fmt.Fprintf(os.Stderr, "emojirep: unknown :%s:, did you mean :%s:?\n", s[m:n], hint)
			}
		}
		io.WriteString(w, s[:n])
		s = s[n:]
	}
	io.WriteString(w, s)
}
