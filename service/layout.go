package service

import "github.com/rabinshresthaaa/CoverPage/pkg/docx"

// A4 portrait with one inch margins.
const (
	pageWidth      docx.Twips = 11906
	pageHeight     docx.Twips = 16838
	headerDistance docx.Twips = 720
)

var pageMargin = docx.InchesToTwips(1)

// contentWidth is the text area between the left and right margins.
var contentWidth = pageWidth - 2*pageMargin

const fontFamily = "Times New Roman"

const (
	baseFontSize    docx.Points = 12
	universitySize  docx.Points = 28
	instituteSize   docx.Points = 24
	campusSize      docx.Points = 22
	subjectSize     docx.Points = 22
	reportLabelSize docx.Points = 20

	// Normal paragraphs: 8pt after, 1.08 line height.
	defaultAfter docx.Twips = 160
	defaultLine  docx.Twips = 259
	singleLine   docx.Twips = 240
)

const (
	universityName = "TRIBHUVAN UNIVERSITY"
	instituteName  = "INSTITUTE OF SCIENCE AND TECHNOLOGY"
	campusName     = "AMRIT SCIENCE CAMPUS"
	reportLabel    = "Lab Report"
	departmentName = "Department of CSIT"

	submittedByLabel = "SUBMITTED BY:"
	submittedToLabel = "SUBMITTED TO:"

	signatureRule     = "__________________________"
	externalSignature = "External Teacher's Signature"
	internalSignature = "Internal Teacher's Signature"
)

// Vertical gaps, in line breaks, between the blocks of the page.
const (
	gapAfterHeader  = 2
	gapAfterLogo    = 2
	gapAfterSubject = 3
	gapAfterInfo    = 3
)
