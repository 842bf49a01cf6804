package docx

// Length and size units used by WordprocessingML.
type (
	// Points is a typographic point, 1/72 inch.
	Points int
	// HalfPoints is the unit of w:sz (font size).
	HalfPoints int
	// Twips is 1/20 point, used for page size, margins, spacing and table widths.
	Twips int
	// Pixels assumes 96 DPI.
	Pixels int
	// EMU is the DrawingML English Metric Unit, 914400 per inch.
	EMU int64
)

const (
	EMUPerInch   EMU   = 914400
	EMUPerPixel  EMU   = 9525
	TwipsPerInch Twips = 1440
)

// PointsToHalfPoints converts a font size in points to the w:sz unit.
func PointsToHalfPoints(pt Points) HalfPoints {
	return HalfPoints(pt * 2)
}

// PixelsToEMU converts a pixel length to EMU at 96 DPI.
func PixelsToEMU(px Pixels) EMU {
	return EMU(px) * EMUPerPixel
}

// InchesToTwips converts whole inches to twips.
func InchesToTwips(in int) Twips {
	return Twips(in) * TwipsPerInch
}

// PointsToTwips converts points to twips.
func PointsToTwips(pt Points) Twips {
	return Twips(pt * 20)
}
