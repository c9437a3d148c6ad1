package model

import "time"

// Names of the document collections served through the generic CRUD routes.
const (
	CollectionProjects        = "projects"
	CollectionTechStack       = "techstack"
	CollectionExperience      = "experience"
	CollectionEducation       = "education"
	CollectionTestimonials    = "testimonials"
	CollectionCertificates    = "certificates"
	CollectionMessages        = "messages"
	CollectionAbout           = "about"
	CollectionSpecializations = "specializations"
)

// Project is a portfolio project entry
type Project struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

// TechStack is a single technology with a proficiency score
type TechStack struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" binding:"required"`
	Icon        string `json:"icon"`
	Category    string `json:"category" binding:"omitempty,oneof=frontend backend tools other"`
	Proficiency int    `json:"proficiency"`
}

// Experience is a work history entry; To is empty while Current is true
type Experience struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id,omitempty"`
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

type Testimonial struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Testimonial string `json:"testimonial"`
	Image       string `json:"image"`
}

type Certificate struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title" binding:"required"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
	Image  string `json:"image"`
}

// Message is a contact-form submission. Date is assigned server-side at
// receipt and Read starts out false; clients cannot set either on create.
type Message struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name" binding:"required"`
	Email   string    `json:"email" binding:"required,email"`
	Message string    `json:"message" binding:"required"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// SocialLinks holds the profile links shown on the public site
type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// About is the site owner's biography. The collection is expected to hold a
// single document, seeded at bootstrap; the store does not enforce that.
type About struct {
	ID           string      `json:"id,omitempty"`
	FullName     string      `json:"fullName"`
	Title        string      `json:"title"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	Location     string      `json:"location"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	ResumeURL    string      `json:"resumeUrl"`
	Social       SocialLinks `json:"social"`
}

type Specialization struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
}
