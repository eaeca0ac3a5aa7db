package generation

import (
	"fmt"
	"strings"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
)

const teacherPersona = "You are an expert VCE English teacher creating learning materials."

const (
	defaultWritingPrompt  = "Reflect on the passage."
	defaultSampleResponse = "Sample response not available."

	definitionNotFound = "Definition not found."
	definitionFailed   = "Could not load definition."

	practiceTitle = "Practice Passage"
	practiceTheme = "My Collection"
)

var passageSchema = llm.Object("A reading passage with its learning material",
	llm.Prop("title", llm.String("A creative title for the passage")),
	llm.Prop("content", llm.String("The content of the passage.")),
	llm.Prop("vocabulary", llm.Array(
		"A list of 5-8 challenging or key vocabulary words found in the passage.",
		llm.Object("",
			llm.Prop("word", llm.String("The word exactly as it appears in the text.")),
			llm.Prop("definition", llm.String("A clear definition suitable for VCE students.")),
			llm.Prop("exampleSentence", llm.String("A new example sentence using the word (not from the passage).")),
		),
	)),
	llm.Prop("questions", llm.Array(
		"5 reading comprehension questions to test understanding.",
		llm.Object("",
			llm.Prop("question", llm.String("The question text.")),
			llm.Prop("answer", llm.String("The correct answer.")),
			llm.Prop("explanation", llm.String("Explanation referencing the text.")),
		),
	)),
	llm.Prop("writingPrompt", llm.String("A thought-provoking essay prompt related to the passage theme.")),
	llm.Prop("sampleResponse", llm.String("A VCE-standard essay response (~250 words) structured with Introduction, TEEL body paragraphs, and Conclusion. Paragraphs must be separated by double newlines.")),
)

var wordDetailSchema = llm.Object("Details about a word or phrase",
	llm.Prop("definition", llm.String("A concise definition suitable for a high school student.")),
	llm.Prop("synonym", llm.String("One common synonym, or a short paraphrase for phrases.")),
	llm.Prop("exampleSentence", llm.String("A new example sentence using the word or phrase.")),
)

func passagePrompt(cfg domain.GenerationConfig) string {
	return fmt.Sprintf(`Write a %s suitable for a VCE (Victorian Certificate of Education) English student.
The topic is: %q.

Requirements:
1. Length: Approximately %s words.
2. Difficulty Level: %s. %s
3. Tone: Appropriate for the literature type and VCE standards.
4. Vocabulary: Include a list of challenging vocabulary words (metalanguage or sophisticated terms). These words MUST be extracted EXACTLY as they appear in the text.
5. Comprehension: Generate 5 reading comprehension questions that test the student's understanding of the text. Include the answer and an explanation.
6. Writing: Include a creative writing prompt and a high-quality sample response. The sample response MUST be structured as a formal VCE English essay:
   - Introduction
   - Body paragraphs following the TEEL structure (Topic sentence, Explanation, Evidence, Link)
   - Conclusion.
   - CRITICAL: Use double line breaks (\n\n) to separate the Introduction, each Body Paragraph, and the Conclusion.`,
		cfg.LiteratureType, cfg.Topic(), cfg.Difficulty.WordCount(), cfg.Difficulty, cfg.Difficulty.Complexity())
}

func definitionPrompt(word string) string {
	return fmt.Sprintf("Define the word %q simply and clearly for a VCE English student. Max 20 words.", word)
}

func wordDetailPrompt(text, sentence string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the word or phrase %q for a VCE English student.\n", text)
	if sentence != "" {
		fmt.Fprintf(&b, "It appears in this context: %q\n", sentence)
		b.WriteString("Give the meaning it has in that context.\n")
	}
	b.WriteString("Return a definition, one synonym and a new example sentence.")
	return b.String()
}

func practicePrompt(words []string) string {
	return fmt.Sprintf(`Write a short, engaging reading passage (about 200 words) for a VCE English student.
It MUST use each of these words or phrases, exactly as written, at least once: %s.
Return only the passage in markdown, without a title or any commentary.`,
		strings.Join(quoteAll(words), ", "))
}

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%q", w)
	}
	return out
}
