package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

func NewBar(len int, description string, w io.Writer) *Bar {
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Goto(i int) {
	_ = (*progressbar.ProgressBar)(b).Set(i)
}

func (b *Bar) Describe(description string) {
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Close()
}
