package executor

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"dario.lol/cdns/internal/ui"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const ansiEraseLine = "\r\x1b[2K"

// Executor runs a command as setup -> fetch -> display. The stages run in
// the background while a spinner renders; fetch can push progress
// messages that replace the spinner label, which batch operations use to
// show the domain currently being worked on.
type Executor[S any, T any] struct {
	cmd             *cobra.Command
	args            []string
	setupMessage    string
	setup           func() (S, error)
	fetchingMessage string
	fetch           func(setupResult S, cmd *cobra.Command, args []string, progress chan<- string) (T, error)
	display         func(data T, fetchDuration time.Duration, err error)
}

type Builder[S any, T any] struct {
	executor *Executor[S, T]
}

func NewBuilder[S any, T any]() *Builder[S, T] {
	return &Builder[S, T]{executor: &Executor[S, T]{}}
}

func (b *Builder[S, T]) Setup(message string, task func() (S, error)) *Builder[S, T] {
	b.executor.setupMessage = message
	b.executor.setup = task
	return b
}

func (b *Builder[S, T]) Fetch(message string, task func(S, *cobra.Command, []string, chan<- string) (T, error)) *Builder[S, T] {
	b.executor.fetchingMessage = message
	b.executor.fetch = task
	return b
}

func (b *Builder[S, T]) Display(displayFunc func(T, time.Duration, error)) *Builder[S, T] {
	b.executor.display = displayFunc
	return b
}

func (b *Builder[S, T]) Build() *Executor[S, T] {
	if b.executor.fetch == nil || b.executor.display == nil {
		panic("Executor is not fully configured: Fetch and Display are required.")
	}
	return b.executor
}

// CobraRun wraps Execute for cobra. Display has already reported the
// error to the user by the time Execute returns, so the wrapper only
// sets the exit code.
func (e *Executor[S, T]) CobraRun() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		e.cmd = cmd
		e.args = args
		if err := e.Execute(); err != nil {
			os.Exit(1)
		}
	}
}

// Execute runs the stages and returns the error that was handed to
// display, if any.
func (e *Executor[S, T]) Execute() error {
	var zeroT T
	writer := bufio.NewWriter(os.Stdout)
	fmt.Fprintln(writer)

	var setupResult S
	if e.setup != nil {
		res, _, err := runStage(writer, e.setupMessage, func() (S, error) { return e.setup() })
		if err != nil {
			fmt.Fprint(writer, ansiEraseLine)
			_ = writer.Flush()
			e.display(zeroT, 0, err)
			return err
		}
		setupResult = res
		fmt.Fprint(writer, ansiEraseLine)
		_ = writer.Flush()
	}

	fetchResult, fetchDuration, fetchErr := runStageWithProgress(writer, e.fetchingMessage, func(p chan<- string) (T, error) {
		return e.fetch(setupResult, e.cmd, e.args, p)
	})

	fmt.Fprint(writer, ansiEraseLine)
	_ = writer.Flush()

	e.display(fetchResult, fetchDuration, fetchErr)
	return fetchErr
}

type result[T any] struct {
	res      T
	err      error
	duration time.Duration
}

func runStage[T any](writer *bufio.Writer, message string, task func() (T, error)) (T, time.Duration, error) {
	s := ui.StyledSpinner()
	resultChan := make(chan result[T], 1)

	go func() {
		start := time.Now()
		res, err := task()
		duration := time.Since(start)
		resultChan <- result[T]{res: res, err: err, duration: duration}
	}()

	for {
		select {
		case res := <-resultChan:
			return res.res, res.duration, res.err
		default:
			var cmd tea.Cmd
			s, cmd = s.Update(spinner.Tick())
			if cmd != nil {
				_ = cmd()
			}
			fmt.Fprintf(writer, "\r%s %s...", s.View(), message)
			_ = writer.Flush()
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func runStageWithProgress[T any](writer *bufio.Writer, initialMessage string, task func(progress chan<- string) (T, error)) (T, time.Duration, error) {
	s := ui.StyledSpinner()
	resultChan := make(chan result[T], 1)
	progressChan := make(chan string)
	currentMessage := initialMessage

	go func() {
		start := time.Now()
		res, err := task(progressChan)
		duration := time.Since(start)
		close(progressChan)
		resultChan <- result[T]{res: res, err: err, duration: duration}
	}()

	for {
		select {
		case res := <-resultChan:
			return res.res, res.duration, res.err
		case msg, ok := <-progressChan:
			if ok {
				fmt.Fprint(writer, ansiEraseLine)
				currentMessage = msg
			}
		default:
			var cmd tea.Cmd
			s, cmd = s.Update(spinner.Tick())
			if cmd != nil {
				_ = cmd()
			}
			fmt.Fprintf(writer, "\r%s %s...", s.View(), currentMessage)
			_ = writer.Flush()
			time.Sleep(50 * time.Millisecond)
		}
	}
}
