package unit

import "math"

// Units of length.
var (
	Metre      = Must(New[Length]("metre", "m", 1))
	Femtometre = Must(Metre.WithPrefix(Femto))
	Picometre  = Must(Metre.WithPrefix(Pico))
	Nanometre  = Must(Metre.WithPrefix(Nano))
	Micrometre = Must(Metre.WithPrefix(Micro))
	Millimetre = Must(Metre.WithPrefix(Milli))
	Centimetre = Must(Metre.WithPrefix(Centi))
	Decimetre  = Must(Metre.WithPrefix(Deci))
	Kilometre  = Must(Metre.WithPrefix(Kilo))

	AstronomicalUnit = Must(Metre.ScaledBy("astronomical unit", "au", 1.495978707e11))
	LightYear        = Must(Metre.ScaledBy("light year", "ly", 9460730472580800))
	Parsec           = Must(AstronomicalUnit.ScaledBy("parsec", "pc", 648000/math.Pi))
	Kiloparsec       = Must(Parsec.WithPrefix(Kilo))
	Megaparsec       = Must(Parsec.WithPrefix(Mega))
	Gigaparsec       = Must(Parsec.WithPrefix(Giga))

	Inch = Must(Millimetre.ScaledBy("inch", "in", 25.4))
	Foot = Must(Inch.ScaledBy("foot", "ft", 12))
	Yard = Must(Foot.ScaledBy("yard", "yd", 3))
	Mile = Must(Yard.ScaledBy("mile", "mi", 1760))
)
