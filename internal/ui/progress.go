package ui

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/mangaread/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type MPBProgressManager struct {
	p *mpb.Progress
}

func NewProgressManager() *MPBProgressManager {
	return NewProgressManagerTo(os.Stderr)
}

func NewProgressManagerTo(w io.Writer) *MPBProgressManager {
	p := mpb.New(
		mpb.WithWidth(40),
		mpb.WithOutput(w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	return &MPBProgressManager{p: p}
}

func (pm *MPBProgressManager) Close() {
	pm.p.Wait()
}

// Register adds a bar counting fetched pages out of total.
func (pm *MPBProgressManager) Register(prefix string, total int) *ProgressHandle {
	h := &ProgressHandle{}

	h.bar = pm.p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),

		mpb.PrependDecorators(
			decor.Name(prefix+"  "),
		),

		mpb.AppendDecorators(
			decor.CountersNoUnit(" %d/%d pages", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + util.Human(h.bytes.Load())
			}),
			decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 6}),
		),
	)

	return h
}

type ProgressHandle struct {
	bar   *mpb.Bar
	bytes atomic.Int64
}

// PageDone records one finished page of n bytes.
func (h *ProgressHandle) PageDone(n int) {
	h.bytes.Add(int64(n))
	h.bar.Increment()
}

// Abort stops the bar early, leaving it on screen.
func (h *ProgressHandle) Abort() {
	h.bar.Abort(false)
}
