package ai

import (
	"fmt"
	"strings"
)

// Prompt builders. Each is a pure string template; caller-supplied text is
// embedded as-is since it is instruction content, not executable output.

func buildAnswerPrompt(question, category, qType, difficulty string) string {
	var b strings.Builder

	b.WriteString("Interview Question Context:\n")
	b.WriteString(fmt.Sprintf("- Job Role: %s\n", category))
	b.WriteString(fmt.Sprintf("- Question Type: %s\n", qType))
	b.WriteString(fmt.Sprintf("- Difficulty Level: %s\n\n", difficulty))
	b.WriteString(fmt.Sprintf("Question: %s\n\n", question))
	b.WriteString("Please provide a comprehensive answer that:")

	if qType == "Technical" {
		b.WriteString(`
1. Explains the concept clearly with technical accuracy
2. Includes practical examples or code snippets where relevant
3. Discusses edge cases or important considerations
4. Mentions best practices and common pitfalls
5. Is structured in a way that's easy to understand and remember

Format the answer in a clear, professional manner suitable for an interview response.`)
	} else {
		b.WriteString(`
1. Follows the STAR method (Situation, Task, Action, Result) where applicable
2. Demonstrates relevant skills and competencies
3. Shows self-awareness and learning
4. Includes specific examples and measurable outcomes
5. Is authentic and professional

Format the answer in a clear, conversational manner suitable for an interview response.`)
	}

	return b.String()
}

func buildFlashcardPrompt(content string, count int, category, qType, difficulty string) string {
	typeLine := qType
	if qType == "Mixed" {
		typeLine = "Mix of Technical and Behavioral questions"
	}
	difficultyLine := difficulty
	if difficulty == "Mixed" {
		difficultyLine = "Mix of Easy, Medium, and Hard questions"
	}

	var b strings.Builder

	b.WriteString("You are an expert educator creating interview preparation flashcards.\n\n")
	b.WriteString("Content to analyze:\n")
	b.WriteString(content)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Task: Generate exactly %d high-quality interview questions and answers based on the content above.\n\n", count))
	b.WriteString("Requirements:\n")
	b.WriteString(fmt.Sprintf("- Job Role: %s\n", category))
	b.WriteString(fmt.Sprintf("- Question Type: %s\n", typeLine))
	b.WriteString(fmt.Sprintf("- Difficulty Level: %s\n", difficultyLine))
	b.WriteString(fmt.Sprintf("- Each question should be clear, specific, and relevant to %s interviews\n", category))
	b.WriteString("- Each answer should be comprehensive, well-structured, and interview-ready\n")
	b.WriteString("- Questions should test understanding of key concepts from the content\n")
	b.WriteString("- Answers should demonstrate expertise and practical knowledge\n\n")
	b.WriteString(`Format your response as a JSON array with this exact structure:
[
  {
    "question": "The interview question here",
    "answer": "The comprehensive answer here",
    "type": "Technical" or "Behavioral",
    "difficulty": "Easy", "Medium", or "Hard",
    "tags": ["tag1", "tag2", "tag3"]
  }
]

Important:
- Return ONLY the JSON array, no additional text
`)
	b.WriteString(fmt.Sprintf("- Generate exactly %d flashcards\n", count))
	b.WriteString(`- Ensure questions are diverse and cover different aspects of the content
- Make answers detailed enough to be useful for interview preparation
- Include 2-4 relevant tags for each flashcard`)

	return b.String()
}

func buildScenarioPrompt(topic, category, complexity string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are an expert interview coach creating realistic case study scenarios for %s interviews.\n\n", category))
	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Complexity: %s\n\n", complexity))
	b.WriteString("Create a detailed, realistic case study scenario that:\n")
	b.WriteString("1. Presents a real-world business problem or technical challenge\n")
	b.WriteString("2. Includes relevant context (company size, industry, constraints, etc.)\n")
	b.WriteString(fmt.Sprintf("3. Is appropriate for %s role interviews\n", category))
	b.WriteString(fmt.Sprintf("4. Matches %s complexity level\n", complexity))
	b.WriteString("5. Provides enough detail for meaningful interview discussion\n")
	b.WriteString("6. Is 300-500 words long\n\n")
	b.WriteString("Return ONLY the case study scenario text, no additional formatting or JSON.")

	return b.String()
}

func buildCaseQuestionsPrompt(scenario, category string, count int) string {
	var b strings.Builder

	b.WriteString("You are an expert interview coach creating interview questions based on a case study.\n\n")
	b.WriteString("Case Study Scenario:\n")
	b.WriteString(scenario)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Job Role: %s\n\n", category))
	b.WriteString(fmt.Sprintf("Generate exactly %d high-quality interview questions that:\n", count))
	b.WriteString("1. Test the candidate's ability to analyze and solve the problem\n")
	b.WriteString("2. Are specific to the case study scenario\n")
	b.WriteString("3. Cover different aspects (technical approach, trade-offs, implementation, etc.)\n")
	b.WriteString(fmt.Sprintf("4. Are appropriate for %s interviews\n", category))
	b.WriteString("5. Require thoughtful, detailed answers\n\n")
	b.WriteString(`Format your response as a JSON array:
[
  {
    "question": "The interview question here",
    "answer": "Comprehensive answer demonstrating expertise"
  }
]

Return ONLY the JSON array, no additional text.`)

	return b.String()
}

func buildFollowUpPrompt(mainQuestion, mainAnswer string, types []string, category string) string {
	labels := make([]string, len(types))
	for i, t := range types {
		if t == "Issues" {
			labels[i] = "Issues/Challenges"
		} else {
			labels[i] = t
		}
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are an expert interview coach creating follow-up questions for %s interviews.\n\n", category))
	b.WriteString(fmt.Sprintf("Main Question: %s\n", mainQuestion))
	b.WriteString(fmt.Sprintf("Main Answer: %s\n\n", mainAnswer))
	b.WriteString(fmt.Sprintf("Generate follow-up questions for the following types: %s\n\n", strings.Join(labels, ", ")))
	b.WriteString("For each type, create ONE insightful follow-up question that:\n")
	b.WriteString("- Digs deeper into the main answer\n")
	b.WriteString("- Tests understanding of underlying concepts\n")
	b.WriteString("- Explores edge cases, trade-offs, or alternatives\n")
	b.WriteString(fmt.Sprintf("- Is specific and relevant to %s role\n\n", category))
	b.WriteString(`Format your response as a JSON array:
[
  {
    "type": "Why" | "What" | "How" | "Issues",
    "question": "The follow-up question",
    "answer": "Comprehensive answer"
  }
]

`)
	b.WriteString(fmt.Sprintf("Return ONLY the JSON array with exactly %d follow-up questions.", len(types)))

	return b.String()
}
