package script

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/gogpu/rt"
)

// EvalTimeout is the hard limit for a single Evaluate call.
const EvalTimeout = 5 * time.Second

// EvalError is a parse or runtime error in a script.
type EvalError struct {
	Line    int // 1-based; 0 when unknown
	Message string
}

func (e *EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("script: line %d: %s", e.Line, e.Message)
	}
	return "script: " + e.Message
}

// Evaluate runs source and returns the scene it describes. It gives up
// after EvalTimeout.
//
// Script mistakes are reported as *EvalError; timeouts and interpreter
// panics are reported as plain errors.
func Evaluate(source string) (*Scene, error) {
	ctx, cancel := context.WithTimeout(context.Background(), EvalTimeout)
	defer cancel()
	return EvaluateContext(ctx, source)
}

type evalResult struct {
	scene *Scene
	err   error
}

// EvaluateContext is like Evaluate but stops waiting when ctx is done.
// The interpreter goroutine is abandoned, not interrupted; its result is
// discarded.
func EvaluateContext(ctx context.Context, source string) (*Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("script: evaluation not started: %w", err)
	}

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("script: panic during evaluation: %v", r)}
			}
		}()
		s, err := evaluate(source)
		ch <- evalResult{scene: s, err: err}
	}()

	select {
	case res := <-ch:
		return res.scene, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("script: evaluation timed out: %w", ctx.Err())
	}
}

// evaluate runs source in a fresh sandbox, so scripts cannot touch the
// filesystem and never see each other's definitions.
func evaluate(source string) (*Scene, error) {
	scene := DefaultScene()
	if strings.TrimSpace(source) == "" {
		return scene, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, scene)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err)
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err)
	}

	rt.Logger().Debug("script evaluated",
		"width", scene.Width, "height", scene.Height, "labels", len(scene.Labels))
	return scene, nil
}

// zygomys reports locations as "Error on line N: ..." or "line N: ...".
var (
	linePattern      = regexp.MustCompile(`(?is)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?is)^line (\d+):\s*(.*)`)
)

func parseZygomysError(err error) *EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return &EvalError{Line: line, Message: strings.TrimSpace(m[2])}
		}
	}
	return &EvalError{Message: strings.TrimSpace(msg)}
}
