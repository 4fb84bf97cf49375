package descriptions

import "sort"

// Tool names shared by the MCP server and its descriptions
const (
	QuizExtract     = "quiz_extract"
	QuizParseText   = "quiz_parse_text"
	QuizSample      = "quiz_sample"
	QuizCheckAnswer = "quiz_check_answer"
)

const (
	QuizExtractDescription = `Extract quiz questions from a page range of a PDF.

**When to use:** A PDF holds numbered multiple-choice or fill-in-the-blank questions and you need them as structured records.

**Recognized layout:** A line starting with a number and a period ("12. Who wrote the Republic?") followed by one to four option lines "a." to "d.". The correct option ends with the answer marker (default "+++"). A single "a." line is read as the answer of a fill-in-the-blank question.

**Examples:**
• Whole document: path "exam.pdf"
• One chapter: path "exam.pdf", start 12, end 20
• Save for later practice: path "exam.pdf", output "exam.json"

**Result:** Page and block counts, then the valid records as JSON. Blocks with a missing or repeated marker, or with two or three options, are counted as rejected. With an output file they are written as null entries.

**Best practices:** Use quiz_parse_text on a page that extracts poorly to see why its blocks were rejected.`

	QuizParseTextDescription = `Parse quiz questions out of raw page text.

**When to use:** Checking how a page of text is matched without a PDF, or diagnosing rejected blocks.

**Examples:**
• "1. Who introduced logic?\na. Aristotle +++\nb. Plato\nc. Socrates\nd. Kant"
• "2. The method of questioning is called\na. Socratic"

**Result:** Every matched block with its record or its rejection reason: split_failed, option_count, no_marker or multiple_markers.`

	QuizSampleDescription = `Draw random questions from a saved question list.

**When to use:** Building a practice set from a JSON file written by quiz_extract or the extract command.

**Examples:**
• Ten questions: path "exam.json", size 10

**Result:** Up to size records with no repeats. Null and malformed entries of the file are skipped and counted as dropped.`

	QuizCheckAnswerDescription = `Judge an answer against one question record.

**When to use:** Running a quiz conversationally and scoring each reply.

**Rules:** Multiple-choice answers are judged by their first letter, case-insensitively, so "B", "b" and "b. Plato" are equivalent. Fill-in answers are compared ignoring case and all whitespace.

**Examples:**
• record {"question": "Who introduced logic?", "options": ["a. Aristotle", "b. Plato", "c. Socrates", "d. Kant"], "answer": "a. Aristotle"}, answer "a"`
)

// ToolDescriptions maps tool names to their descriptions
var ToolDescriptions = map[string]string{
	QuizExtract:     QuizExtractDescription,
	QuizParseText:   QuizParseTextDescription,
	QuizSample:      QuizSampleDescription,
	QuizCheckAnswer: QuizCheckAnswerDescription,
}

// GetToolDescription returns the description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns the described tool names in sorted order
func GetAllToolNames() []string {
	names := make([]string, 0, len(ToolDescriptions))
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
