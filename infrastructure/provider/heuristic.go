package provider

import (
	"context"
	"strings"

	"github.com/jobpilot/jobpilot/domain/session"
)

// knownSkills is the keyword vocabulary the heuristic scans for, keyed
// by the lowercase token as it appears in resume text.
var knownSkills = map[string]string{
	"go":         "Go",
	"golang":     "Go",
	"python":     "Python",
	"java":       "Java",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"rust":       "Rust",
	"c++":        "C++",
	"c#":         "C#",
	"ruby":       "Ruby",
	"php":        "PHP",
	"swift":      "Swift",
	"kotlin":     "Kotlin",
	"scala":      "Scala",
	"sql":        "SQL",
	"postgresql": "PostgreSQL",
	"postgres":   "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"redis":      "Redis",
	"kafka":      "Kafka",
	"rabbitmq":   "RabbitMQ",
	"docker":     "Docker",
	"kubernetes": "Kubernetes",
	"k8s":        "Kubernetes",
	"terraform":  "Terraform",
	"aws":        "AWS",
	"gcp":        "GCP",
	"azure":      "Azure",
	"react":      "React",
	"vue":        "Vue",
	"angular":    "Angular",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"django":     "Django",
	"flask":      "Flask",
	"spring":     "Spring",
	"graphql":    "GraphQL",
	"grpc":       "gRPC",
	"rest":       "REST",
	"git":        "Git",
	"linux":      "Linux",
	"ci/cd":      "CI/CD",
}

// knownDomains maps domain keywords to canonical domain names.
var knownDomains = map[string]string{
	"fintech":    "fintech",
	"banking":    "fintech",
	"payments":   "fintech",
	"healthcare": "healthcare",
	"medical":    "healthcare",
	"e-commerce": "e-commerce",
	"ecommerce":  "e-commerce",
	"retail":     "e-commerce",
	"gaming":     "gaming",
	"education":  "education",
	"logistics":  "logistics",
	"security":   "security",
	"devops":     "devops",
	"ml":         "machine learning",
	"ai":         "machine learning",
}

// seniorityRank orders seniority keywords so the highest mentioned
// level wins.
var seniorityRank = []string{"principal", "staff", "senior", "mid", "junior"}

// HeuristicExtractor extracts skills by keyword scanning. It needs no
// network and always succeeds, so it backs deployments without an AI
// endpoint.
type HeuristicExtractor struct{}

// NewHeuristicExtractor creates a HeuristicExtractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Extract scans resumeText for known skill, domain, and seniority
// keywords. The output is deterministic for a given input.
func (h *HeuristicExtractor) Extract(_ context.Context, resumeText string) (session.Extraction, error) {
	tokens := tokenize(resumeText)

	var extracted session.Extraction
	seenSkills := make(map[string]bool)
	seenDomains := make(map[string]bool)

	for _, tok := range tokens {
		if skill, ok := knownSkills[tok]; ok && !seenSkills[skill] {
			seenSkills[skill] = true
			extracted.Skills = append(extracted.Skills, skill)
		}
		if domain, ok := knownDomains[tok]; ok && !seenDomains[domain] {
			seenDomains[domain] = true
			extracted.Domains = append(extracted.Domains, domain)
		}
	}

	present := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		present[tok] = true
	}
	for _, level := range seniorityRank {
		if present[level] {
			extracted.Seniority = level
			break
		}
	}

	return extracted, nil
}

// tokenize lowercases and splits text, trimming punctuation that would
// hide keywords, while keeping symbol-bearing names like "c++" intact.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.Trim(f, ".,;:()[]{}\"'"))
	}
	return out
}
