// Command review uploads a document to a LegalLens server, or to the built-in
// demo simulator, and prints the analysis.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"legallens/internal/demo"
	"legallens/internal/review"
	"legallens/internal/shared/telemetry"
)

func main() {
	file := flag.String("file", "", "document to analyze")
	demoMode := flag.Bool("demo", false, "use the demo simulator instead of the server")
	serverURL := flag.String("server", review.DefaultServerURL, "LegalLens server base URL")
	masked := flag.Bool("masked", false, "show the privacy-protected document")
	speak := flag.Bool("speak", false, "read the summary aloud after analyzing")
	interactive := flag.Bool("i", false, "read commands from stdin after the first analysis")
	verbose := flag.Bool("v", false, "print JSON log lines to stderr")
	flag.Parse()

	if *verbose {
		telemetry.SetOutput(os.Stderr)
	} else {
		telemetry.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var speaker review.Speaker = review.NopSpeaker{}
	if *speak || *interactive {
		speaker = review.DetectSpeaker()
	}
	s := review.NewSession(review.NewClient(*serverURL, nil), demo.NewSimulator(), speaker)
	s.SetDemoMode(*demoMode)
	if *masked {
		s.ToggleView()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *file != "" {
		if err := s.OpenFile(*file); err != nil {
			log.Fatalf("open: %v", err)
		}
		runAnalyze(ctx, s, out)
		if *speak {
			play(s, out)
		}
	}

	if *interactive || *file == "" {
		repl(ctx, s, os.Stdin, out)
	}
}

func repl(ctx context.Context, s *review.Session, in io.Reader, out *bufio.Writer) {
	fmt.Fprintln(out, "commands: open <path>, analyze, demo, view, play, stop, reset, quit")
	out.Flush()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		out.Flush()
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "":
		case "open":
			if err := s.OpenFile(strings.TrimSpace(arg)); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printState(s.Snapshot(), out)
		case "analyze":
			runAnalyze(ctx, s, out)
		case "demo":
			on := s.ToggleDemoMode()
			fmt.Fprintf(out, "demo mode: %t\n", on)
		case "view":
			s.ToggleView()
			printDocument(s, out)
		case "play":
			play(s, out)
		case "stop":
			s.Stop()
			fmt.Fprintln(out, "stopped")
		case "reset":
			s.Reset()
			printState(s.Snapshot(), out)
		case "quit", "exit":
			s.Stop()
			return
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func runAnalyze(ctx context.Context, s *review.Session, out *bufio.Writer) {
	st := s.Snapshot()
	if st.Content == "" {
		fmt.Fprintln(out, "no document content; use open <path>")
		return
	}
	if st.DemoMode {
		fmt.Fprintln(out, "analyzing (demo mode)...")
	} else {
		fmt.Fprintln(out, "analyzing...")
	}
	out.Flush()

	_ = s.Analyze(ctx)
	st = s.Snapshot()
	if st.Error != "" {
		fmt.Fprintf(out, "error: %s\n", st.Error)
		if st.APIKeyBanner {
			fmt.Fprintln(out, "Google Gemini API Key Required: get a key from https://aistudio.google.com/app/apikey,")
			fmt.Fprintln(out, "set GOOGLE_GENERATIVE_AI_API_KEY for the server, or run with -demo.")
		}
		return
	}
	printResult(st, out)
	printDocument(s, out)
}

func play(s *review.Session, out *bufio.Writer) {
	ok, err := s.Play()
	switch {
	case err != nil:
		fmt.Fprintf(out, "speech error: %v\n", err)
	case !ok:
		fmt.Fprintln(out, "nothing to play; analyze a document first")
	default:
		fmt.Fprintln(out, "playing summary")
	}
}

func printState(st review.State, out *bufio.Writer) {
	switch st.Phase {
	case review.PhaseNoFile:
		fmt.Fprintln(out, "no document selected")
	default:
		fmt.Fprintf(out, "selected %s (%d bytes)\n", st.FileName, len(st.Content))
	}
}

func printResult(st review.State, out *bufio.Writer) {
	if st.Result == nil {
		return
	}
	fmt.Fprintln(out, "\nPlain English Summary")
	fmt.Fprintln(out, st.Result.SimplifiedText)
	fmt.Fprintln(out, "\nKey Information")
	for i, p := range st.Result.KeyPoints {
		fmt.Fprintf(out, "%d. %s\n", i+1, p)
	}
}

func printDocument(s *review.Session, out *bufio.Writer) {
	st := s.Snapshot()
	if st.Result == nil {
		return
	}
	title := "Original Document"
	if st.ShowMasked {
		title = "Privacy-Protected Version"
	}
	fmt.Fprintf(out, "\n%s\n%s\n", title, s.DisplayText())
}
