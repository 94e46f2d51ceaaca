package scoring

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/dto"
)

const (
	DecisionProceed  = "Proceed to Recruiter"
	DecisionRejected = "Auto-Rejected"

	// DefaultThreshold is the match score at which an application goes to
	// a recruiter instead of being auto-rejected.
	DefaultThreshold = 80
)

type domainKeywords struct {
	name  string
	words []string
}

var domains = []domainKeywords{
	{"ecommerce", []string{"e-commerce", "ecommerce", "shopify", "woocommerce", "magento", "cart", "checkout"}},
	{"finance", []string{"fintech", "banking", "payments", "ledger", "kyc", "aml", "loan", "credit", "debit"}},
	{"marketing", []string{"seo", "sem", "campaign", "social media", "content marketing", "brand"}},
	{"technology", []string{"software", "saas", "cloud", "microservices", "api", "devops", "kubernetes", "docker"}},
	{"education", []string{"edtech", "learning", "course", "student", "teacher", "classroom"}},
	{"healthcare", []string{"healthcare", "medical", "patient", "clinical", "hospital", "diagnostic"}},
}

var (
	skillPattern    = regexp.MustCompile(`(?i)\b(java|javascript|typescript|python|react|node(?:\.js)?|express|mongodb|sql|postgres|mysql|html|css|tailwind|next(?:\.js)?|angular|vue|redux|docker|kubernetes|aws|gcp|azure|git|figma|photoshop|illustrator|nlp|ml|ai|data(?:\s*science)?|rest|graphql|golang)\b`)
	bachelorPattern = regexp.MustCompile(`(?i)\bb\.?\s?tech\b|bachelor|\bb\.?e\b|\bb\.?sc\b`)
	masterPattern   = regexp.MustCompile(`(?i)\bm\.?\s?tech\b|master|\bm\.?e\b|\bm\.?sc\b`)
	fresherPattern  = regexp.MustCompile(`(?i)fresher`)
	expPattern      = regexp.MustCompile(`(?i)experience`)
)

// Criteria is what a posting asks for, explicit and implied.
type Criteria struct {
	Skills         []string
	Domain         string
	Qualifications []string
	Mode           string
	Location       string
}

// Applicant is the comparable view of a jobseeker.
type Applicant struct {
	Name              string
	Skills            []string
	Education         []string
	Domain            string
	PreferredLocation string
}

type Match struct {
	Score     int
	Matched   []string
	Unmatched []string
	Decision  string
	Summary   string
}

// ExtractSkills returns the known skill keywords mentioned in text, lower
// cased, without repeats, in order of first mention.
func ExtractSkills(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range skillPattern.FindAllString(text, -1) {
		m = strings.ToLower(m)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// CriteriaFor reads the required skills of a posting plus any skill keywords
// its title, description or tags mention.
func CriteriaFor(p dto.Posting) Criteria {
	scan := strings.ToLower(strings.Join([]string{p.Description, p.Title, strings.Join(p.Tags, " ")}, " "))

	skills := lowerSet(p.SkillsRequired)
	for _, s := range ExtractSkills(scan) {
		if !slices.Contains(skills, s) {
			skills = append(skills, s)
		}
	}

	domain := detectDomain(scan)
	if domain == "" {
		domain = strings.ToLower(p.Industry)
	}

	eligibility := strings.ToLower(p.Eligibility)
	qualText := scan + " " + eligibility
	var quals []string
	if bachelorPattern.MatchString(qualText) {
		quals = append(quals, "bachelor")
	}
	if masterPattern.MatchString(qualText) {
		quals = append(quals, "master")
	}
	if fresherPattern.MatchString(qualText) {
		quals = append(quals, "freshers")
	}
	if expPattern.MatchString(qualText) {
		quals = append(quals, "experienced")
	}

	return Criteria{
		Skills:         skills,
		Domain:         domain,
		Qualifications: quals,
		Mode:           strings.ToLower(p.Mode),
		Location:       strings.ToLower(p.Location),
	}
}

// ApplicantFrom merges profile skills, skills from the application itself
// and skills extracted from the resume.
func ApplicantFrom(name string, profile dto.ProfileDTO, appSkills []string, resumeText string) Applicant {
	skills := lowerSet(profile.ExtractedSkills)
	for _, s := range append(append([]string{}, profile.Skills...), appSkills...) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !slices.Contains(skills, s) {
			skills = append(skills, s)
		}
	}

	education := make([]string, 0, len(profile.Education))
	for _, e := range profile.Education {
		education = append(education, strings.ToLower(strings.TrimSpace(e.Degree+" "+e.Specialization)))
	}

	return Applicant{
		Name:              name,
		Skills:            skills,
		Education:         education,
		Domain:            detectDomain(strings.ToLower(resumeText)),
		PreferredLocation: strings.ToLower(strings.TrimSpace(profile.PreferredLocation)),
	}
}

// Score weighs skill overlap 60%, domain 20%, qualification 10% and
// mode/location preference 10%.
func (c Criteria) Score(a Applicant, threshold int) Match {
	var matched, unmatched []string

	have := map[string]bool{}
	for _, s := range a.Skills {
		have[s] = true
	}
	hits := 0
	for _, s := range c.Skills {
		if have[s] {
			matched = append(matched, "skill:"+s)
			hits++
		} else {
			unmatched = append(unmatched, "skill:"+s)
		}
	}
	skill := 0.0
	if len(c.Skills) > 0 {
		skill = float64(hits) / float64(len(c.Skills))
	}

	domain := 0.0
	if c.Domain != "" && strings.EqualFold(c.Domain, a.Domain) {
		domain = 1
		matched = append(matched, "domain:"+c.Domain)
	} else {
		unmatched = append(unmatched, "domain:"+c.Domain)
	}

	qual := 0.0
	eduText := strings.Join(a.Education, " ")
	switch {
	case slices.Contains(c.Qualifications, "master") && masterPattern.MatchString(eduText):
		qual = 1
	case slices.Contains(c.Qualifications, "bachelor") && bachelorPattern.MatchString(eduText):
		qual = 1
	}
	if qual > 0 {
		matched = append(matched, "qualification")
	} else if len(c.Qualifications) > 0 {
		unmatched = append(unmatched, "qualification")
	}

	pref := 0.0
	if c.Mode == "online" || c.Mode == "remote" {
		pref += 0.5
	}
	if c.Location != "" && a.PreferredLocation != "" && strings.Contains(c.Location, a.PreferredLocation) {
		pref += 0.5
	}

	score := int(math.Round((0.6*skill + 0.2*domain + 0.1*qual + 0.1*pref) * 100))
	return Match{
		Score:     score,
		Matched:   matched,
		Unmatched: unmatched,
		Decision:  Decide(score, threshold),
		Summary:   summary(a.Name, score, matched, unmatched),
	}
}

func Decide(score, threshold int) string {
	if score >= threshold {
		return DecisionProceed
	}
	return DecisionRejected
}

func summary(name string, score int, matched, unmatched []string) string {
	if name == "" {
		name = "Applicant"
	}
	return fmt.Sprintf("%s match score %d%%. Matched: %s. Missing: %s.",
		name, score, topSkills(matched), topSkills(unmatched))
}

func topSkills(items []string) string {
	var out []string
	for _, it := range items {
		if s, ok := strings.CutPrefix(it, "skill:"); ok {
			out = append(out, s)
			if len(out) == 5 {
				break
			}
		}
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, ", ")
}

// detectDomain returns the domain with the most keyword hits in text, or ""
// when none match. Ties go to the earlier domain.
func detectDomain(text string) string {
	type hit struct {
		name  string
		count int
	}
	var hits []hit
	for _, d := range domains {
		n := 0
		for _, w := range d.words {
			if strings.Contains(text, w) {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, hit{d.name, n})
		}
	}
	if len(hits) == 0 {
		return ""
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })
	return hits[0].name
}

func lowerSet(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
