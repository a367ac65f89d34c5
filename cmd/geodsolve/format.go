package main

import (
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

// formatter renders numbers for output. Angles carry five more decimals
// than distances, which keeps them at roughly the same resolution on the
// ground.
type formatter struct {
	prec  int
	human bool
}

func newFormatter(conf *viper.Viper) formatter {
	prec := conf.GetInt("prec")
	if prec < 0 {
		prec = 0
	}
	return formatter{prec: prec, human: conf.GetBool("human")}
}

func (f formatter) angle(v float64) string {
	return strconv.FormatFloat(v, 'f', f.prec+5, 64)
}

func (f formatter) distance(v float64) string {
	if f.human {
		return humanize.CommafWithDigits(v/1000, f.prec) + " km"
	}
	return strconv.FormatFloat(v, 'f', f.prec, 64)
}

func (f formatter) scale(v float64) string {
	return strconv.FormatFloat(v, 'f', f.prec+7, 64)
}

func (f formatter) area(v float64) string {
	if f.human {
		return humanize.CommafWithDigits(v/1e6, f.prec) + " km²"
	}
	return strconv.FormatFloat(v, 'f', max(f.prec-3, 0), 64)
}

func (f formatter) count(n int) string {
	if f.human {
		return humanize.Comma(int64(n))
	}
	return strconv.Itoa(n)
}

func join(fields ...string) string {
	return strings.Join(fields, " ")
}
