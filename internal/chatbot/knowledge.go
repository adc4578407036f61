// Package chatbot implements the portfolio assistant's offline responder
// and the knowledge base it draws answers from.
package chatbot

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project describes a single portfolio project.
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	GithubURL    string   `yaml:"github_url" json:"githubUrl"`
}

// Experience describes a single work engagement.
type Experience struct {
	Title       string `yaml:"title" json:"title"`
	Company     string `yaml:"company" json:"company"`
	Duration    string `yaml:"duration" json:"duration"`
	Description string `yaml:"description" json:"description"`
}

// Skills groups the owner's skills by area.
type Skills struct {
	Frontend  []string `yaml:"frontend" json:"frontend"`
	Backend   []string `yaml:"backend" json:"backend"`
	Databases []string `yaml:"databases" json:"databases"`
	Tools     []string `yaml:"tools" json:"tools"`
}

// KnowledgeBase is the fixed, read-only data the responder answers from.
// It is never mutated after construction.
type KnowledgeBase struct {
	Owner      string       `yaml:"owner" json:"owner"`
	Assistant  string       `yaml:"assistant" json:"assistant"`
	Skills     Skills       `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Contact    string       `yaml:"contact" json:"contact"`
	Education  string       `yaml:"education" json:"education"`
	Interests  []string     `yaml:"interests" json:"interests"`
}

// Load reads a knowledge base from a YAML file.
func Load(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge yaml: %w", err)
	}

	if err := kb.validate(); err != nil {
		return nil, fmt.Errorf("invalid knowledge file: %w", err)
	}
	return &kb, nil
}

func (kb *KnowledgeBase) validate() error {
	if strings.TrimSpace(kb.Owner) == "" {
		return errors.New("owner is required")
	}
	if len(kb.Projects) == 0 {
		return errors.New("at least one project is required")
	}
	return nil
}

// OwnerFirstName returns the owner's given name for conversational replies.
func (kb *KnowledgeBase) OwnerFirstName() string {
	if fields := strings.Fields(kb.Owner); len(fields) > 0 {
		return fields[0]
	}
	return kb.Owner
}

// AllSkills flattens every skill area into a single list.
func (kb *KnowledgeBase) AllSkills() []string {
	all := make([]string, 0, len(kb.Skills.Frontend)+len(kb.Skills.Backend)+len(kb.Skills.Databases)+len(kb.Skills.Tools))
	all = append(all, kb.Skills.Frontend...)
	all = append(all, kb.Skills.Backend...)
	all = append(all, kb.Skills.Databases...)
	all = append(all, kb.Skills.Tools...)
	return all
}

// ProjectTitles lists the titles of every project.
func (kb *KnowledgeBase) ProjectTitles() []string {
	titles := make([]string, len(kb.Projects))
	for i, p := range kb.Projects {
		titles[i] = p.Title
	}
	return titles
}

// findProject returns the first project whose title contains the substring,
// case-insensitively.
func (kb *KnowledgeBase) findProject(substr string) *Project {
	substr = strings.ToLower(substr)
	for i := range kb.Projects {
		if strings.Contains(strings.ToLower(kb.Projects[i].Title), substr) {
			return &kb.Projects[i]
		}
	}
	return nil
}

// Default returns the built-in knowledge base for the portfolio owner.
func Default() *KnowledgeBase {
	return &KnowledgeBase{
		Owner:     "Adarsh Kumar Vishwakarma",
		Assistant: "Pratibha",
		Skills: Skills{
			Frontend:  []string{"Angular", "TypeScript", "JavaScript", "HTML", "CSS"},
			Backend:   []string{"Node.js", "Express.js", "Java", "Spring Boot", "Hibernate"},
			Databases: []string{"MongoDB", "SQL", "MySQL"},
			Tools:     []string{"Git", "VS Code", "Postman", "Jenkins", "Jira", "Grafana", "Docker", "Keycloak", "RabbitMQ", "GitHub", "SendGrid"},
		},
		Projects: []Project{
			{
				Title:        "E-Commerce Platform",
				Description:  "Full-featured e-commerce platform with Angular and JSON Server. Includes user authentication, product management, and responsive UI.",
				Technologies: []string{"Angular", "JSON Server"},
				GithubURL:    "https://github.com/Adarsh-Kumar-Vishwakarma/E-comm.git",
			},
			{
				Title:        "Book Management System",
				Description:  "Spring Boot REST API with complete CRUD operations for book management. Features MySQL database integration and JPA/Hibernate ORM.",
				Technologies: []string{"Spring Boot", "Java 17", "MySQL", "JPA/Hibernate", "Maven"},
				GithubURL:    "https://github.com/Adarsh-Kumar-Vishwakarma/Book_Management_System.git",
			},
			{
				Title:        "FooKart - Food Ordering Web App",
				Description:  "Modern Angular-based food ordering application with search, filtering, and shopping cart functionality.",
				Technologies: []string{"Angular 17", "TypeScript", "CSS", "Jasmine/Karma"},
				GithubURL:    "https://github.com/Adarsh-Kumar-Vishwakarma/FooKart.git",
			},
			{
				Title:        "Online Shopping Management System",
				Description:  "Spring Boot REST API with advanced entity relationships, DTO patterns, and validation.",
				Technologies: []string{"Spring Boot", "Java 17", "MySQL", "JPA/Hibernate", "Hibernate Validator"},
				GithubURL:    "https://github.com/Adarsh-Kumar-Vishwakarma/Online-Shopping-Management-SpringBoot.git",
			},
		},
		Experience: []Experience{
			{
				Title:       "Junior Software Developer",
				Company:     "Edulab Educational Exchange Pvt. Ltd",
				Duration:    "05 May 2025 - Present",
				Description: "Working at Pashu Solapur University, contributing to microservices development in the admissions domain.",
			},
			{
				Title:       "Software Developer",
				Company:     "New Era It Consultancy",
				Duration:    "Feb 2024 - Feb 2025",
				Description: "Developed CRM software solutions for clients like Reliance, Mapple, and iPlanet using Angular framework.",
			},
		},
		Contact:   "Available through the contact form on this website",
		Education: "Computer Science background with focus on AI/ML",
		Interests: []string{"Artificial Intelligence", "Web Development", "Open Source", "Innovation"},
	}
}
