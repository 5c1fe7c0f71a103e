package unit

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Prefix scales a unit, e.g. kilo or kibi.
type Prefix interface {
	Name() string
	Symbol() string
	Factor() float64
}

// MetricPrefix is a power-of-ten prefix.
type MetricPrefix struct {
	name   string
	symbol string
	factor float64
}

// Metric prefixes.
var (
	Yotta = metric("yotta", "Y", 24)
	Zetta = metric("zetta", "Z", 21)
	Exa   = metric("exa", "E", 18)
	Peta  = metric("peta", "P", 15)
	Tera  = metric("tera", "T", 12)
	Giga  = metric("giga", "G", 9)
	Mega  = metric("mega", "M", 6)
	Kilo  = metric("kilo", "k", 3)
	Hecto = metric("hecto", "h", 2)
	Deca  = metric("deca", "da", 1)
	Deci  = metric("deci", "d", -1)
	Centi = metric("centi", "c", -2)
	Milli = metric("milli", "m", -3)
	Micro = metric("micro", "μ", -6)
	Nano  = metric("nano", "n", -9)
	Pico  = metric("pico", "p", -12)
	Femto = metric("femto", "f", -15)
	Atto  = metric("atto", "a", -18)
	Zepto = metric("zepto", "z", -21)
	Yocto = metric("yocto", "y", -24)
)

// MetricPrefixes lists the standard metric prefixes, largest first.
var MetricPrefixes = []MetricPrefix{
	Yotta, Zetta, Exa, Peta, Tera, Giga, Mega, Kilo, Hecto, Deca,
	Deci, Centi, Milli, Micro, Nano, Pico, Femto, Atto, Zepto, Yocto,
}

func metric(name, symbol string, exponent int) MetricPrefix {
	return MetricPrefix{name: name, symbol: symbol, factor: math.Pow10(exponent)}
}

// NewMetricPrefix defines a metric prefix with an arbitrary finite factor.
func NewMetricPrefix(name, symbol string, factor float64) (MetricPrefix, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return MetricPrefix{}, &ConfigurationError{Unit: name, Factor: factor, Err: ErrInvalidPrefix}
	}
	return MetricPrefix{name: name, symbol: symbol, factor: factor}, nil
}

// TenToThePower returns the prefix 10^exponent.
func TenToThePower(exponent float64) (MetricPrefix, error) {
	label := fmt.Sprintf("10^%v ", exponent)
	return NewMetricPrefix(label, label, math.Pow(10, exponent))
}

// ThousandToThePower returns the prefix 1000^exponent.
func ThousandToThePower(exponent float64) (MetricPrefix, error) {
	return TenToThePower(3 * exponent)
}

func (p MetricPrefix) Name() string    { return p.name }
func (p MetricPrefix) Symbol() string  { return p.symbol }
func (p MetricPrefix) Factor() float64 { return p.factor }

// BinaryPrefix is a power-of-two prefix.
type BinaryPrefix struct {
	name   string
	symbol string
	factor float64
}

// Binary prefixes.
var (
	Kibi = binary("kibi", "Ki", 10)
	Mebi = binary("mebi", "Mi", 20)
	Gibi = binary("gibi", "Gi", 30)
	Tebi = binary("tebi", "Ti", 40)
	Pebi = binary("pebi", "Pi", 50)
	Exbi = binary("exbi", "Ei", 60)
	Zebi = binary("zebi", "Zi", 70)
	Yobi = binary("yobi", "Yi", 80)
)

// BinaryPrefixes lists the standard binary prefixes, smallest first.
var BinaryPrefixes = []BinaryPrefix{Kibi, Mebi, Gibi, Tebi, Pebi, Exbi, Zebi, Yobi}

func binary(name, symbol string, exponent int) BinaryPrefix {
	return BinaryPrefix{name: name, symbol: symbol, factor: math.Ldexp(1, exponent)}
}

// TwoToThePower returns the prefix 2^exponent.
func TwoToThePower(exponent float64) (BinaryPrefix, error) {
	factor := math.Pow(2, exponent)
	label := fmt.Sprintf("2^%v ", exponent)
	if math.IsInf(factor, 0) || math.IsNaN(factor) {
		return BinaryPrefix{}, &ConfigurationError{Unit: label, Factor: factor, Err: ErrInvalidPrefix}
	}
	return BinaryPrefix{name: label, symbol: label, factor: factor}, nil
}

func (p BinaryPrefix) Name() string    { return p.name }
func (p BinaryPrefix) Symbol() string  { return p.symbol }
func (p BinaryPrefix) Factor() float64 { return p.factor }

// LookupPrefix finds a standard prefix by symbol or by case-insensitive
// name. Input is NFKC-normalized first, so the micro sign "µ" (U+00B5)
// finds Micro.
func LookupPrefix(s string) (Prefix, bool) {
	s = norm.NFKC.String(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}

	for _, p := range MetricPrefixes {
		if p.symbol == s || strings.EqualFold(p.name, s) {
			return p, true
		}
	}
	for _, p := range BinaryPrefixes {
		if p.symbol == s || strings.EqualFold(p.name, s) {
			return p, true
		}
	}
	return nil, false
}
