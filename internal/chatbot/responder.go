package chatbot

import (
	"fmt"
	"strings"
)

// rule pairs a predicate with a response builder. Rules are evaluated in
// order and the first match wins, so they must be registered from most
// specific (named project, creator identity) to most general (skills).
type rule struct {
	name  string
	match func(msg string) bool
	build func(kb *KnowledgeBase) string
}

// Responder answers free-text questions from the knowledge base. It is the
// offline fallback for the chat widget: Respond is pure, total and always
// returns a non-empty string.
type Responder struct {
	kb    *KnowledgeBase
	rules []rule
}

// NewResponder builds a responder over the given knowledge base.
func NewResponder(kb *KnowledgeBase) *Responder {
	r := &Responder{kb: kb}
	r.rules = []rule{
		{
			name: "creator",
			match: func(m string) bool {
				return containsAny(m, "who created", "who made", "who built", "who are you", "your creator")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("I'm %s, an AI assistant created by %s to help you explore this portfolio. Ask me about skills, projects, or experience!",
					kb.Assistant, kb.Owner)
			},
		},
		{
			name: "project-ecommerce",
			match: func(m string) bool {
				return containsAny(m, "e-commerce", "ecommerce")
			},
			build: projectAnswer("E-Commerce"),
		},
		{
			name: "project-fookart",
			match: func(m string) bool {
				return containsAny(m, "fookart", "food")
			},
			build: projectAnswer("FooKart"),
		},
		{
			name: "project-books",
			match: func(m string) bool {
				return hasWord(m, "book", "books")
			},
			build: projectAnswer("Book"),
		},
		{
			name: "greeting",
			match: func(m string) bool {
				return hasWord(m, "hello", "hi", "hey")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("Hello! How can I help you learn more about %s's portfolio today?", kb.OwnerFirstName())
			},
		},
		{
			name: "skills-frontend",
			match: func(m string) bool {
				return containsAny(m, "frontend", "angular", "typescript")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s's frontend skills include: %s. He's particularly experienced with %s.",
					kb.OwnerFirstName(), strings.Join(kb.Skills.Frontend, ", "), strings.Join(firstN(kb.Skills.Frontend, 2), " and "))
			},
		},
		{
			name: "skills-backend",
			match: func(m string) bool {
				return containsAny(m, "backend", "java", "spring", "node")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s's backend skills include: %s.", kb.OwnerFirstName(), strings.Join(kb.Skills.Backend, ", "))
			},
		},
		{
			name: "skills-databases",
			match: func(m string) bool {
				return containsAny(m, "database", "sql", "mongodb")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s's database skills include: %s. He has experience with both SQL and NoSQL databases.",
					kb.OwnerFirstName(), strings.Join(kb.Skills.Databases, ", "))
			},
		},
		{
			name: "skills-tools",
			match: func(m string) bool {
				return containsAny(m, "tools", "software")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s uses various tools and technologies: %s.", kb.OwnerFirstName(), strings.Join(kb.Skills.Tools, ", "))
			},
		},
		{
			name: "skills",
			match: func(m string) bool {
				return containsAny(m, "skill", "technology", "tech")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s is skilled in: %s.", kb.OwnerFirstName(), strings.Join(kb.AllSkills(), ", "))
			},
		},
		{
			name: "projects",
			match: func(m string) bool {
				return containsAny(m, "project", "work")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("Some of %s's notable projects include: %s. You can see detailed information in the Projects section.",
					kb.OwnerFirstName(), strings.Join(kb.ProjectTitles(), ", "))
			},
		},
		{
			name: "experience",
			match: func(m string) bool {
				return containsAny(m, "experience", "background", "job")
			},
			build: func(kb *KnowledgeBase) string {
				lines := make([]string, len(kb.Experience))
				for i, exp := range kb.Experience {
					lines[i] = fmt.Sprintf("%s at %s (%s): %s", exp.Title, exp.Company, exp.Duration, exp.Description)
				}
				return fmt.Sprintf("%s's professional experience:\n\n%s", kb.OwnerFirstName(), strings.Join(lines, "\n\n"))
			},
		},
		{
			name: "contact",
			match: func(m string) bool {
				return containsAny(m, "contact", "email", "reach")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("You can contact %s through the contact form on this website, or check out the Contact section for more details.",
					kb.OwnerFirstName())
			},
		},
		{
			name: "education",
			match: func(m string) bool {
				return containsAny(m, "education", "degree", "study")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s has a %s. He's passionate about continuous learning and staying updated with the latest technologies.",
					kb.OwnerFirstName(), kb.Education)
			},
		},
		{
			name: "ai-ml",
			match: func(m string) bool {
				return hasWord(m, "ai", "ml") || containsAny(m, "machine learning")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("%s has a strong interest in AI and Machine Learning, and is always exploring new developments in the field.",
					kb.OwnerFirstName())
			},
		},
		{
			name: "thanks",
			match: func(m string) bool {
				return containsAny(m, "thank")
			},
			build: func(kb *KnowledgeBase) string {
				return fmt.Sprintf("You're welcome! Feel free to ask me anything else about %s's portfolio.", kb.OwnerFirstName())
			},
		},
	}
	return r
}

// Respond returns the canned answer for the first matching rule, or a
// generic hint when nothing matches.
func (r *Responder) Respond(text string) string {
	msg := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.match(msg) {
			return rule.build(r.kb)
		}
	}
	return fmt.Sprintf("I'm here to help you learn about %s's portfolio! Try asking about his skills, projects, or experience.",
		r.kb.OwnerFirstName())
}

func projectAnswer(titleSubstr string) func(kb *KnowledgeBase) string {
	return func(kb *KnowledgeBase) string {
		p := kb.findProject(titleSubstr)
		if p == nil {
			return fmt.Sprintf("Some of %s's notable projects include: %s.", kb.OwnerFirstName(), strings.Join(kb.ProjectTitles(), ", "))
		}
		return fmt.Sprintf("%s: %s Built with %s. Check it out: %s",
			p.Title, p.Description, strings.Join(p.Technologies, ", "), p.GithubURL)
	}
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

// containsAny reports whether msg contains any of the substrings.
func containsAny(msg string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(msg, sub) {
			return true
		}
	}
	return false
}

// hasWord matches whole words only. Short keywords like "hi" and "ai" would
// otherwise fire on words such as "this" and "email".
func hasWord(msg string, words ...string) bool {
	fields := strings.FieldsFunc(msg, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
