package unit

// Units of mass.
var (
	Kilogram  = Must(New[Mass]("kilogram", "kg", 1))
	Gram      = Must(Kilogram.ScaledBy("gram", "g", 1e-3))
	Milligram = Must(Gram.WithPrefix(Milli))
	Microgram = Must(Gram.WithPrefix(Micro))
	Tonne     = Must(Kilogram.ScaledBy("tonne", "t", 1000))
	Pound     = Must(Kilogram.ScaledBy("pound", "lb", 0.45359237))
	Ounce     = Must(Pound.ScaledBy("ounce", "oz", 1.0/16))
)
