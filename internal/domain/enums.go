package domain

// Theme is the subject area of a generated passage.
type Theme string

const (
	ThemeScienceTech Theme = "Science & Technology"
	ThemeHistory     Theme = "History"
	ThemeNature      Theme = "Nature & Environment"
	ThemeSociety     Theme = "Society & Culture"
	ThemeArts        Theme = "Arts & Literature"
	ThemeSports      Theme = "Sports & Health"
	ThemeCustom      Theme = "Custom Topic"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeScienceTech, ThemeHistory, ThemeNature, ThemeSociety,
		ThemeArts, ThemeSports, ThemeCustom:
		return true
	}
	return false
}

// Themes lists the preset themes followed by ThemeCustom.
func Themes() []Theme {
	return []Theme{
		ThemeScienceTech, ThemeHistory, ThemeNature, ThemeSociety,
		ThemeArts, ThemeSports, ThemeCustom,
	}
}

// LiteratureType is the format of a generated passage.
type LiteratureType string

const (
	LiteratureEssay        LiteratureType = "Essay"
	LiteratureShortStory   LiteratureType = "Short Story"
	LiteratureNewsArticle  LiteratureType = "News Article"
	LiteratureOpinionPiece LiteratureType = "Opinion Piece"
	LiteratureBiography    LiteratureType = "Biography"
	LiteraturePoem         LiteratureType = "Poem"
)

func (l LiteratureType) String() string { return string(l) }

func (l LiteratureType) IsValid() bool {
	switch l {
	case LiteratureEssay, LiteratureShortStory, LiteratureNewsArticle,
		LiteratureOpinionPiece, LiteratureBiography, LiteraturePoem:
		return true
	}
	return false
}

// Difficulty controls passage length and register.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium:
		return true
	}
	return false
}

// WordCount returns the target word range for the difficulty.
func (d Difficulty) WordCount() string {
	if d == DifficultyEasy {
		return "150-200"
	}
	return "400-500"
}

// Complexity returns the register guidance given to the provider.
func (d Difficulty) Complexity() string {
	if d == DifficultyEasy {
		return "Suitable for VCE English Unit 1/2 or EAL. Clearer expression, standard academic vocabulary."
	}
	return "Suitable for VCE English Unit 3/4. Sophisticated vocabulary, complex sentence structures, nuanced expression, and high-level analysis potential."
}

// PrintMode selects which parts of a document are printed.
type PrintMode string

const (
	// PrintStudent omits answers, explanations and sample responses.
	PrintStudent PrintMode = "student"
	// PrintTeacher includes the full answer key.
	PrintTeacher PrintMode = "teacher"
)

func (m PrintMode) String() string { return string(m) }

func (m PrintMode) IsValid() bool {
	return m == PrintStudent || m == PrintTeacher
}

// QuestionType is the kind of a video quiz item.
type QuestionType string

const (
	QuestionMCQ       QuestionType = "mcq"
	QuestionTrueFalse QuestionType = "true_false"
)
