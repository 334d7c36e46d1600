package generator

import (
	"fmt"
	"strings"
)

const skeletonSystemPrompt = `You are a senior career mentor designing learning roadmaps for people entering tech careers.

Rules:
- Produce a staged roadmap for the given career domain, ordered from fundamentals to advanced, job-ready topics.
- Use 3 to 6 stages. Each stage has 3 to 6 steps. Every step is one self-contained topic.
- Skip or compress topics the learner already covers with their listed skills, but never produce an empty stage.
- Step descriptions are one or two sentences: what the topic is and why it matters for the domain.
- Study links must be real, well-known free resources (official docs, freeCodeCamp, MDN, university OCW). When unsure of a URL, leave it empty rather than invent one.`

const quizSystemPrompt = `You are an examiner writing an assessment quiz for one topic of a learning roadmap.

Rules:
- Write questions that test understanding of the given topic only.
- Mix multiple-choice and short-answer questions, mostly multiple-choice.
- An occasional coding question (answered in prose or a short snippet) is fine for hands-on topics.
- Multiple choice questions have exactly 4 options with exactly one correct. Distractors reflect plausible misunderstandings, not random values.
- Short answer questions must have a brief, unambiguous expected answer (a term, a command, a one-line fact).
- Use plain text. No markdown, no code fences, no numbering inside the question text.`

const comparisonSystemPrompt = `You are a career advisor comparing a person's current skills against what a target career domain demands.

Rules:
- acquired_skills lists only the user's own skills that genuinely apply to the domain. Do not add skills they did not list.
- missing_skills lists the concrete skills the domain requires that the user lacks, most important first.
- recommendations are short and actionable, each tied to one or more missing skills.
- Keep every item concise: a skill name or a single sentence.`

const judgmentSystemPrompt = `You are grading a single short free-text answer.

Rules:
- Mark the answer correct if it matches the expected answer in meaning, allowing spelling slips, synonyms and different phrasing.
- Mark it incorrect if it is wrong, empty, off-topic, or only partially covers the expected answer.
- Judge meaning only. Never reward length or confidence.`

const practiceSystemPrompt = `You are setting a coding practice problem for a learner working on a specific skill.

Rules:
- The problem must exercise the given skill at the given difficulty and be solvable in any mainstream language.
- The statement is self-contained: input format, output format, and at least 2 worked examples.
- Constraints are explicit and small enough for a straightforward solution at easy difficulty.
- default_stdin reproduces the first example's input exactly.`

const reviewSystemPrompt = `You are reviewing a learner's solution to a coding practice problem.

Rules:
- Judge the code against the problem statement, not against style preferences.
- overall_status is "pass" if the approach solves the problem, "partial" if it works for some inputs or misses edge cases, "fail" otherwise.
- Score correctness, efficiency, readability and robustness from 1 to 10 independently.
- summary_feedback names the single most important improvement first.`

func buildSkeletonMessage(domain string, skills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Career domain: %s\n", domain)
	b.WriteString("Learner's existing skills: ")
	if len(skills) == 0 {
		b.WriteString("none listed")
	} else {
		b.WriteString(strings.Join(skills, ", "))
	}
	b.WriteString("\n")
	return b.String()
}

func buildQuizMessage(title, description string, minQuestions, maxQuestions int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", title)
	if description != "" {
		fmt.Fprintf(&b, "Topic description: %s\n", description)
	}
	fmt.Fprintf(&b, "Number of questions: between %d and %d\n", minQuestions, maxQuestions)
	return b.String()
}

func buildComparisonMessage(domain string, skills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target domain: %s\n", domain)
	b.WriteString("User's skills:\n")
	if len(skills) == 0 {
		b.WriteString("None\n")
	} else {
		for i, s := range skills {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	return b.String()
}

func buildJudgmentMessage(question, correctAnswer, userAnswer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Expected answer: %s\n", correctAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", userAnswer)
	return b.String()
}

func buildPracticeMessage(skill, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n", skill)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	return b.String()
}

func buildReviewMessage(spec *PracticeSpec, language, code string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", spec.Title)
	fmt.Fprintf(&b, "Statement:\n%s\n", spec.Description)
	if spec.Constraints != "" {
		fmt.Fprintf(&b, "Constraints: %s\n", spec.Constraints)
	}
	for i, ex := range spec.Examples {
		fmt.Fprintf(&b, "Example %d input:\n%s\nExample %d output:\n%s\n", i+1, ex.Input, i+1, ex.Output)
	}
	fmt.Fprintf(&b, "\nLanguage: %s\n", language)
	fmt.Fprintf(&b, "Submitted code:\n%s\n", code)
	return b.String()
}
