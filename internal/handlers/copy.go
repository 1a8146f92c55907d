package handlers

import (
	"sgwebsitebuilder.com/web/internal/format"
	"sgwebsitebuilder.com/web/internal/widgets"
)

// Card is a titled blurb.
type Card struct {
	Title       string
	Description string
}

// Step is one numbered stage of a process.
type Step struct {
	Number      string
	Title       string
	Description string
}

// Metric is a headline result.
type Metric struct {
	Value string
	Label string
}

// CTA is the closing call-to-action block of a page.
type CTA struct {
	Eyebrow string
	Title   string
	Body    string
	Button  Link
}

// QA is one FAQ entry.
type QA struct {
	Question string
	Answer   string
}

// Testimonial is one client quote.
type Testimonial struct {
	Quote string
	Name  string
	Role  string
}

// ServiceSummary is a service card with its highlights.
type ServiceSummary struct {
	Title       string
	Description string
	Href        string
	Highlights  []string
}

// TimelineBlock groups project kinds by typical duration.
type TimelineBlock struct {
	Title     string
	Timeframe string
	Items     []string
}

// TechGroup is a titled set of technologies.
type TechGroup struct {
	Title       string
	Description string
	Items       []string
}

// Example is a showcased build on a service page.
type Example struct {
	Heading     string
	Preview     string
	Title       string
	Description string
	Tags        []string
}

// ServicePage is the copy of one /services/{slug} page.
type ServicePage struct {
	Slug           string
	Title          string
	Intro          string
	Scheme         widgets.Scheme
	Collab         bool
	ListHeading    string
	List           []string
	Groups         []TechGroup
	Example        Example
	ResultsHeading string
	Results        []Metric
	CTA            CTA
}

func contactLink(label string) Link {
	return Link{Href: "/contact", Label: label}
}

// HomeContent is the copy of the landing page.
type HomeContent struct {
	Headline        string
	Tagline         string
	Primary         Link
	Secondary       Link
	Marquee         widgets.Marquee[string]
	FitHeading      string
	FitIntro        string
	BestWith        []string
	LessSuitable    []string
	ServicesEyebrow string
	ServicesHeading string
	Services        []ServiceSummary
	AllServices     Link
	ProofHeading    string
	ProofIntro      string
	Samples         []Card
	Process         []Step
	Quality         []Card
	CTA             CTA
}

// Home is the landing page copy.
var Home = HomeContent{
	Headline:  "Singapore's #1 Web Builder for Businesses.",
	Tagline:   "We develop websites for startups and SMEs that turn visitors into customers.",
	Primary:   Link{Href: "/contact", Label: "Start a Project"},
	Secondary: Link{Href: "/work", Label: "Our Work"},
	Marquee: widgets.NewMarquee([]string{
		"DBS", "SIA", "Sheng Siong", "NTUC", "WeBull", "Singtel",
		"StarHub", "Grab", "Shopee", "Lazada", "CapitaLand", "Keppel",
	}),
	FitHeading: "Built for teams that want results.",
	FitIntro:   "We work best with teams who value performance.",
	BestWith: []string{
		"Teams using their website to generate leads or sales",
		"Founders launching a new site or rebuilding an underperforming one",
		"Startups that care about speed, scalability, and long-term maintainability",
	},
	LessSuitable: []string{
		"Large organisations with long approval chains",
		"Projects focused purely on visual branding with no conversion goals",
		"One-off or experimental sites without a clear business objective",
	},
	ServicesEyebrow: "Services we provide",
	ServicesHeading: "Websites built to convert, scale, and perform",
	Services: []ServiceSummary{
		{Title: "E-commerce", Href: "/services/e-commerce", Description: "Build powerful online stores that drive sales and deliver seamless shopping experiences."},
		{Title: "Business Web Design", Href: "/services/business-web-design", Description: "Professional websites that establish credibility and convert visitors into customers."},
		{Title: "Custom Web Development", Href: "/services/custom-web-development", Description: "Tailored web solutions built to your exact specifications and business needs."},
		{Title: "Website Management", Href: "/services/website-management", Description: "Ongoing maintenance and support to keep your website running smoothly and securely."},
		{Title: "Search Engine Optimisation (SEO)", Href: "/services/seo", Description: "Improve your search rankings and drive organic traffic to your website."},
	},
	AllServices:  Link{Href: "/services", Label: "See All Services"},
	ProofHeading: "Proven through practice",
	ProofIntro:   "Real-world builds, backed by a clear and reliable process.",
	Samples: []Card{
		{Title: "E-commerce", Description: "Built to improve enquiry quality and page speed"},
		{Title: "Business Web Design", Description: "Scalable architecture designed for conversion and retention"},
		{Title: "Custom Web Development", Description: "Clean design focused on trial signups and feature clarity"},
	},
	Process: []Step{
		{Number: "1", Title: "Strategy", Description: "Define goals, audience, and conversion intent"},
		{Number: "2", Title: "Structure", Description: "Plan pages, content hierarchy, and user flow"},
		{Number: "3", Title: "Build", Description: "Clean, scalable, production-ready code"},
		{Number: "4", Title: "Launch", Description: "Performance, SEO, and deployment ready"},
	},
	Quality: []Card{
		{Title: "Quality Assurance", Description: "Rigorous testing ensures your website works flawlessly."},
		{Title: "Cost Transparency", Description: "Clear pricing with no hidden fees or surprises."},
		{Title: "End-to-end Service", Description: "From concept to launch, we handle everything."},
		{Title: "Fast Service", Description: "Quick turnaround times without compromising quality."},
	},
	CTA: CTA{
		Eyebrow: "Have a project in mind?",
		Title:   "Let's talk",
		Body:    "Tell us what you're building, and we'll let you know if we're a good fit.",
		Button:  contactLink("Start a project"),
	},
}

// ServicesContent is the copy of the services overview.
type ServicesContent struct {
	Headline       string
	Tagline        string
	OfferHeading   string
	Offer          []Card
	TypesHeading   string
	Types          []ServiceSummary
	TimelineTitle  string
	TimelineIntro  string
	Timelines      []TimelineBlock
	TimelineNote   string
	ProvideHeading string
	ProvideIntro   string
	Required       []string
	NiceToHave     []string
	Included       []string
	Excluded       []string
	GoodFit        []string
	NotFit         []string
	FinishedTitle  string
	Finished       []Card
	CTA            CTA
}

// Services is the services overview copy.
var Services = ServicesContent{
	Headline:     "Services we provide",
	Tagline:      "We develop solutions that help scale your business.",
	OfferHeading: "What we offer",
	Offer: []Card{
		{Title: "Architecture & Setup", Description: "Foundation planning, tech stack selection, and project scaffolding for scalable growth."},
		{Title: "Implementation", Description: "Clean, production-grade code built with performance, maintainability, and best practices in mind."},
		{Title: "Integrations", Description: "Seamless connection of third-party tools, APIs, and services that power your business."},
		{Title: "Deployment & Handover", Description: "Launch-ready delivery with documentation, hosting setup, and knowledge transfer."},
	},
	TypesHeading: "Types of Projects We Take",
	Types: []ServiceSummary{
		{Title: "E-commerce", Href: "/services/e-commerce", Highlights: []string{
			"WooCommerce/WordPress stores", "Shopify custom themes", "Custom Next.js e-commerce",
			"Payment gateway integration", "Product catalog management",
		}},
		{Title: "Business Web Design", Href: "/services/business-web-design", Highlights: []string{
			"Corporate websites", "Landing pages", "Portfolio sites",
			"Service-based business sites", "Responsive design implementation",
		}},
		{Title: "Custom Web Development", Href: "/services/custom-web-development", Highlights: []string{
			"Hand-coded HTML/CSS/JS", "React/Next.js applications", "Custom CMS integration",
			"API development & integration", "Progressive Web Apps (PWA)",
		}},
		{Title: "Website Management", Href: "/services/website-management", Highlights: []string{
			"Regular content updates", "Security monitoring & patches", "Performance optimization",
			"Backup & recovery services", "Technical support",
		}},
		{Title: "Search Engine Optimisation (SEO)", Href: "/services/seo", Highlights: []string{
			"On-page SEO optimization", "Technical SEO audits", "Keyword research & strategy",
			"Meta tags & schema markup", "Google Analytics setup",
		}},
	},
	TimelineTitle: "Typical Timelines",
	TimelineIntro: "Timelines vary depending on scope and complexity. These are general ranges, not fixed commitments.",
	Timelines: []TimelineBlock{
		{Title: "Small Projects", Timeframe: "1–3 weeks", Items: []string{"Landing pages", "Portfolio sites", "Basic business websites"}},
		{Title: "Medium Projects", Timeframe: "3–6 weeks", Items: []string{"E-commerce stores", "Custom web applications", "CMS integration", "Multi-page sites"}},
		{Title: "Large Projects", Timeframe: "6–12 weeks", Items: []string{"Complex e-commerce platforms", "Custom SaaS applications", "Enterprise websites", "Advanced integrations"}},
	},
	TimelineNote:   "Scope clarity, speed of client feedback, third-party integrations or dependencies, and change requests during development.",
	ProvideHeading: "What Clients Need to Provide",
	ProvideIntro:   "Great projects are collaborative. Here's what helps us deliver the best results.",
	Required: []string{
		"Clear objective and success criteria",
		"Access to necessary tools and accounts",
		"Content or structured requirements",
		"Timely feedback during review phases",
	},
	NiceToHave: []string{
		"Existing brand guidelines",
		"Sitemap or rough structure",
		"Example references",
		"Technical documentation (if applicable)",
	},
	Included: []string{
		"Define system architecture and technical structure",
		"Set up project foundation and environments",
		"Implement responsive front-end and back-end functionality",
		"Integrate third-party services and APIs",
		"Connect CMS or database systems (if applicable)",
		"Optimize performance and basic technical SEO setup",
		"Deploy to production (Vercel or similar)",
		"Provide access handover and documentation",
	},
	Excluded: []string{
		"Branding and visual identity design",
		"Copywriting or messaging strategy",
		"Marketing campaigns or paid ads",
		"Ongoing content updates after delivery",
		"Long-term maintenance unless separately agreed",
	},
	GoodFit: []string{
		"Founders with validated ideas ready to build",
		"SMEs redesigning or rebuilding an existing site",
		"Teams needing internal tools or workflow systems",
		"Businesses that need custom functionality beyond templates",
		"Teams with a clear decision-maker",
		"Clients who value clean, scalable builds",
	},
	NotFit: []string{
		"Just need something quick and cheap",
		"No clear goals or requirements",
		"No decision-maker involved",
		"Projects requiring daily content updates",
		"Pure marketing-only engagements",
	},
	FinishedTitle: "What a Finished Build Looks Like",
	Finished: []Card{
		{Title: "Fully Functional Website", Description: "All features working as specified, tested across devices and browsers, ready for real-world use."},
		{Title: "Deployed & Live", Description: "Hosted on production environment with SSL certificate, custom domain configured, and accessible to users."},
		{Title: "Documentation Provided", Description: "Complete handover documentation including how to manage content, update the site, and access all systems."},
		{Title: "Full Ownership Transfer", Description: "Complete access to hosting, domain, repository, and all accounts. You own everything we build."},
	},
	CTA: CTA{
		Eyebrow: "If This Approach Aligns With You",
		Title:   "Let's start a conversation",
		Body:    "This page explains how we work. If you're looking for a development partner who values clarity, quality, and collaboration, reach out.",
		Button:  contactLink("Start a Conversation"),
	},
}

// ServicePages lists the service detail pages in menu order.
var ServicePages = []ServicePage{
	{
		Slug:        "e-commerce",
		Title:       "E-commerce Development",
		Intro:       "Build high-converting online stores that scale with your business. From custom shopping experiences to seamless payment integration, we create e-commerce solutions that drive revenue.",
		Scheme:      widgets.DefaultScheme,
		ListHeading: "Technologies We Use",
		List: []string{
			"Next.js & React", "Shopify & WooCommerce", "Stripe & Payment Gateways",
			"Headless CMS Integration", "Custom Cart Solutions", "Inventory Management",
		},
		Example: Example{
			Heading:     "E-commerce Site Example",
			Preview:     "E-commerce Site Preview",
			Title:       "Fashion Retailer Online Store",
			Description: "A complete e-commerce solution built for a growing fashion brand. Features include custom product filtering, wishlist functionality, size guides, and seamless checkout experience.",
			Tags:        []string{"Next.js", "Shopify", "Stripe"},
		},
		ResultsHeading: "Client Results",
		Results: []Metric{
			{Value: "+180%", Label: "Increase in conversion rate"},
			{Value: "45% faster", Label: "Page load times"},
			{Value: "+$250K", Label: "Additional revenue in 6 months"},
		},
		CTA: CTA{
			Title:  "Ready to Build Your E-commerce Store?",
			Body:   "Let's discuss your e-commerce project and create a solution that drives sales and scales with your business.",
			Button: contactLink("Start Your Project"),
		},
	},
	{
		Slug:        "business-web-design",
		Title:       "Business Web Design",
		Intro:       "Professional websites designed to convert visitors into customers. We create clean, modern designs that reflect your brand and drive business results.",
		Scheme:      widgets.YellowScheme,
		Collab:      true,
		ListHeading: "Technologies We Use",
		Groups: []TechGroup{
			{Title: "Core Stack", Items: []string{"Next.js", "React", "TailwindCSS"}, Description: "Modern frameworks that deliver fast, responsive, and maintainable websites with exceptional user experiences."},
			{Title: "Design Systems", Items: []string{"Figma to Code", "Component Libraries", "Brand Guidelines Integration"}, Description: "Systematic approach to design implementation ensuring consistency and scalability across your entire web presence."},
			{Title: "User Experience", Items: []string{"Responsive Design", "Accessibility Standards (WCAG)", "Mobile-First Approach"}, Description: "Ensuring your website works flawlessly across all devices and is accessible to all users, including those with disabilities."},
			{Title: "Performance", Items: []string{"Core Web Vitals Optimization", "SEO Best Practices", "Fast Load Times"}, Description: "Optimized for speed and search engines, ensuring your website ranks well and provides instant user experiences."},
		},
		Example: Example{
			Heading:     "Business Website Example",
			Preview:     "Business Website Preview",
			Title:       "Professional Services Firm",
			Description: "A modern, conversion-focused website for a consulting firm. Clean design with clear service offerings, team profiles, case studies, and an integrated contact system that increased qualified leads by 250%.",
			Tags:        []string{"Next.js", "TailwindCSS", "Sanity CMS"},
		},
		ResultsHeading: "Client Results",
		Results: []Metric{
			{Value: "+250%", Label: "Lead generation"},
			{Value: "92/100", Label: "PageSpeed score"},
			{Value: "3x", Label: "Faster to market"},
			{Value: "+85%", Label: "Mobile conversion"},
			{Value: "60%", Label: "Lower bounce rate"},
		},
		CTA: CTA{
			Title:  "Ready to Elevate Your Business Online?",
			Body:   "Let's create a professional website that represents your brand and converts visitors into customers.",
			Button: contactLink("Start Your Project"),
		},
	},
	{
		Slug:        "custom-web-development",
		Title:       "Custom Web Development",
		Intro:       "Tailored web applications built to your exact specifications. From complex dashboards to custom workflows, we develop scalable solutions that solve your unique business challenges.",
		Scheme:      widgets.DefaultScheme,
		ListHeading: "Technologies We Use",
		List: []string{
			"Next.js & React", "Node.js & Express", "PostgreSQL & MongoDB",
			"API Development", "Third-party Integrations", "Cloud Deployment",
		},
		Example: Example{
			Heading:     "Custom Application Example",
			Preview:     "Custom Application Preview",
			Title:       "SaaS Project Management Platform",
			Description: "A fully custom project management solution built for a growing startup. Features include real-time collaboration, custom workflows, advanced reporting, and integrations with 15+ third-party tools. Now serving 100K+ daily active users.",
			Tags:        []string{"Next.js", "Node.js", "PostgreSQL", "AWS"},
		},
		ResultsHeading: "Client Results",
		Results: []Metric{
			{Value: "60% faster", Label: "Development time vs traditional methods"},
			{Value: "99.9%", Label: "Uptime reliability"},
			{Value: "100K+", Label: "Users handled daily"},
		},
		CTA: CTA{
			Title:  "Need a Custom Solution?",
			Body:   "Let's discuss your unique requirements and build a custom web application that perfectly fits your business needs.",
			Button: contactLink("Start Your Project"),
		},
	},
	{
		Slug:        "website-management",
		Title:       "Website Management",
		Intro:       "Keep your website running smoothly with our comprehensive management services. From regular updates to security monitoring, we handle the technical details so you can focus on your business.",
		Scheme:      widgets.DefaultScheme,
		ListHeading: "What's Included",
		List: []string{
			"Content Updates", "Security Monitoring", "Performance Optimization",
			"Bug Fixes & Maintenance", "Backup Management", "Analytics & Reporting",
		},
		Example: Example{
			Heading:     "Management in Action",
			Preview:     "Management Dashboard Preview",
			Title:       "Enterprise Client Portfolio",
			Description: "We manage a portfolio of 50+ websites for various clients, ensuring 99.9% uptime, regular security updates, performance optimization, and content updates. Our proactive monitoring catches issues before they impact users, and our rapid response team resolves problems in under 2 hours on average.",
			Tags:        []string{"24/7 Monitoring", "Monthly Reports", "Priority Support"},
		},
		ResultsHeading: "Our Track Record",
		Results: []Metric{
			{Value: "99.9%", Label: "Uptime guarantee"},
			{Value: "<2 hours", Label: "Average response time"},
			{Value: "50+ sites", Label: "Currently managed"},
		},
		CTA: CTA{
			Title:  "Let Us Manage Your Website",
			Body:   "Focus on your business while we keep your website secure, fast, and up-to-date.",
			Button: contactLink("Get Started"),
		},
	},
	{
		Slug:        "seo",
		Title:       "SEO Optimization",
		Intro:       "Improve your search rankings and drive organic traffic with technical SEO optimization. We focus on the technical foundation that search engines love and users appreciate.",
		Scheme:      widgets.DefaultScheme,
		ListHeading: "SEO Services",
		List: []string{
			"Technical SEO Audit", "On-page Optimization", "Performance Optimization",
			"Schema Markup", "Core Web Vitals", "Mobile Optimization",
		},
		Example: Example{
			Heading:     "SEO Success Story",
			Preview:     "SEO Analytics Preview",
			Title:       "B2B SaaS Company",
			Description: "Comprehensive SEO optimization for a B2B SaaS platform resulted in a 320% increase in organic traffic within 6 months. We implemented technical SEO best practices, optimized Core Web Vitals, added structured data, and improved mobile performance. The site now ranks in the top 3 for all target keywords with an average PageSpeed score of 95+.",
			Tags:        []string{"Technical SEO", "Performance", "Schema Markup"},
		},
		ResultsHeading: "Client Results",
		Results: []Metric{
			{Value: "+320%", Label: "Increase in organic traffic"},
			{Value: "Top 3", Label: "Rankings for target keywords"},
			{Value: "95+", Label: "Average PageSpeed score"},
		},
		CTA: CTA{
			Title:  "Ready to Improve Your Rankings?",
			Body:   "Let's optimize your website for search engines and drive more organic traffic to your business.",
			Button: contactLink("Get Started"),
		},
	},
}

// FindService returns the service page for slug.
func FindService(slug string) (ServicePage, bool) {
	for _, p := range ServicePages {
		if p.Slug == slug {
			return p, true
		}
	}
	return ServicePage{}, false
}

// PricingContent is the copy of the pricing page.
type PricingContent struct {
	Headline       string
	Tagline        string
	HowHeading     string
	HowBody        string
	RangesHeading  string
	RangesIntro    string
	Ranges         []PriceRange
	FactorsHeading string
	FactorsIntro   string
	Factors        []CostFactor
	StepsHeading   string
	Steps          []Step
	CTA            CTA
}

// PriceRange is one "starting from" band. From is whole Singapore dollars.
type PriceRange struct {
	Title       string
	From        int64
	OpenEnded   bool
	Description string
}

// Label renders the band, e.g. "Starting from $15,000+".
func (p PriceRange) Label() string {
	label := "Starting from " + format.FmtSGD(p.From)
	if p.OpenEnded {
		label += "+"
	}
	return label
}

// CostFactor is one driver of project cost.
type CostFactor struct {
	Icon        string
	Title       string
	Description string
}

// Pricing is the pricing page copy.
var Pricing = PricingContent{
	Headline:      "Transparent Pricing",
	Tagline:       `We price based on scope and complexity. We don't do "cheap and fast." Clear ranges help both sides align on expectations before we begin.`,
	HowHeading:    "How Pricing Works",
	HowBody:       "Projects are scoped individually. Pricing depends on complexity, integrations, and timeline. All projects begin with a scoped estimate based on your specific requirements.",
	RangesHeading: "Typical Project Ranges",
	RangesIntro:   "Projects are priced based on scope and complexity. These are general ranges.",
	Ranges: []PriceRange{
		{Title: "Small Scoped Builds", From: 3000, Description: "Marketing sites, small rebuilds, clearly defined scope with minimal integrations."},
		{Title: "Medium Builds", From: 8000, Description: "Custom functionality, CMS integration, multi-page sites with moderate complexity."},
		{Title: "Complex Systems", From: 15000, OpenEnded: true, Description: "Internal tools, dashboards, API-heavy systems with complex business logic."},
	},
	FactorsHeading: "What Affects Cost",
	FactorsIntro:   "Several factors influence project pricing.",
	Factors: []CostFactor{
		{Icon: "🎯", Title: "Scope Clarity", Description: "Well-defined requirements lead to accurate estimates"},
		{Icon: "🔌", Title: "Number of Integrations", Description: "Third-party services and API connections"},
		{Icon: "⚙️", Title: "Custom Functionality", Description: "Unique features tailored to your needs"},
		{Icon: "⏱️", Title: "Timeline Urgency", Description: "Rushed timelines may require additional resources"},
		{Icon: "📝", Title: "Content Readiness", Description: "Having content prepared speeds up delivery"},
		{Icon: "🛟", Title: "Ongoing Support", Description: "Maintenance and update requirements"},
	},
	StepsHeading: "What Happens After You Reach Out",
	Steps: []Step{
		{Number: "1", Title: "Intro Call / Alignment", Description: "We discuss your goals, requirements, and expectations to ensure we're a good fit."},
		{Number: "2", Title: "Scope Clarification", Description: "We define the project scope, deliverables, and technical requirements in detail."},
		{Number: "3", Title: "Proposal with Timeline + Pricing", Description: "You receive a clear proposal outlining timeline, cost, and what's included."},
		{Number: "4", Title: "Project Kickoff", Description: "Once aligned, we begin development with clear milestones and communication."},
	},
	CTA: CTA{
		Eyebrow: "If This Aligns With Your Expectations",
		Title:   "Let's start a conversation",
		Body:    "We work with teams who value clarity and quality. If you're looking for a development partner who aligns with these principles, reach out.",
		Button:  contactLink("Start a Project"),
	},
}

// CompanyContent is the copy of the company page.
type CompanyContent struct {
	Headline       string
	Intro          string
	FocusHeading   string
	Focus          []string
	StandardsTitle string
	Principles     []Card
	ClientsHeading string
	IdealClients   []string
	ClientsNote    string
	CTA            CTA
}

// Company is the company page copy.
var Company = CompanyContent{
	Headline:     "Who We Are",
	Intro:        "We're a small, focused development studio. We specialize in implementation, not marketing. We build clean, scalable, production-ready systems for businesses that need them. We care about doing the job properly.",
	FocusHeading: "Why We Focus on Development",
	Focus: []string{
		"We don't do branding, ads, or marketing strategy. We believe specialization produces better outcomes. Development is execution, not ideas.",
		"By focusing exclusively on implementation, we've built deep expertise in what we do. We prefer depth over offering everything.",
		"This focus allows us to deliver systems that work reliably, scale properly, and hand over cleanly.",
	},
	StandardsTitle: "Our Standards",
	Principles: []Card{
		{Title: "Build for scale, not shortcuts", Description: "We prioritize long-term maintainability over quick fixes. Every decision considers future growth."},
		{Title: "Clarity before execution", Description: "We don't start building until requirements are clear. Ambiguity leads to rework."},
		{Title: "Production-ready means fully deployed", Description: "A project isn't done until it's live, tested, and handed over with documentation."},
		{Title: "Clean handover, no lock-in", Description: "You own everything. Full access to code, hosting, and systems from day one."},
		{Title: "Respect timelines and scope", Description: "We commit to realistic timelines and communicate clearly when scope changes."},
	},
	ClientsHeading: "Who We Work Best With",
	IdealClients: []string{
		"Founders with validated ideas",
		"SMEs rebuilding or upgrading systems",
		"Teams with a clear decision-maker",
		"Businesses that value clean execution",
		"Clients who understand development is collaboration",
	},
	ClientsNote: "We work best when expectations are clear and communication is direct.",
	CTA: CTA{
		Eyebrow: "If This Sounds Like a Good Fit",
		Body:    "We work with teams who value clarity, quality, and straightforward collaboration. If that aligns with how you operate, let's start a conversation.",
		Button:  contactLink("Start a Conversation"),
	},
}

// ContactContent is the static copy around the contact form.
type ContactContent struct {
	Headline      string
	Intro         string
	SubmitLabel   string
	ResponseNote  string
	DirectHeading string
	NextHeading   string
	NextSteps     []Step
}

// Contact is the contact page copy.
var Contact = ContactContent{
	Headline:      "Let's Talk About Your Project",
	Intro:         "Share your project details below and we'll get back to you within 24 hours. This is a scoped conversation, not a sales call.",
	SubmitLabel:   "Start the Conversation",
	ResponseNote:  "We typically respond within 24 hours.",
	DirectHeading: "Prefer Direct Contact?",
	NextHeading:   "What Happens Next",
	NextSteps: []Step{
		{Number: "1", Title: "We review your inquiry"},
		{Number: "2", Title: "We schedule a short alignment call"},
		{Number: "3", Title: "We scope and send proposal"},
	},
}

// ListingContent is the hero and closing copy of a content listing.
type ListingContent struct {
	Headline string
	Tagline  string
	Empty    string
	CTA      CTA
}

// BlogListing is the /blog copy.
var BlogListing = ListingContent{
	Headline: "Blog",
	Tagline:  "Read about our latest announcements",
	Empty:    "No blog posts yet.",
	CTA: CTA{
		Eyebrow: "Want to Work With Us?",
		Title:   "Let's create something exceptional",
		Body:    "Discuss your project and see how we can help bring your vision to life.",
		Button:  contactLink("Get in Touch"),
	},
}

// WorkListing is the /work copy.
var WorkListing = ListingContent{
	Headline: "Our Projects",
	Tagline:  "A showcase of the work we've delivered for our clients. From e-commerce platforms to custom web applications.",
	Empty:    "No projects yet.",
	CTA: CTA{
		Eyebrow: "Ready to Start Your Project?",
		Title:   "Let's create something exceptional",
		Body:    "Discuss your project and see how we can help bring your vision to life.",
		Button:  contactLink("Get in Touch"),
	},
}

// FAQHeading and FAQIntro head the accordion.
const (
	FAQHeading = "Frequently Asked Questions"
	FAQIntro   = "Got questions? We've got answers. If you don't find what you're looking for, feel free to reach out."
)

// FAQs are the accordion entries.
var FAQs = []QA{
	{
		Question: "How long does it take to build a website?",
		Answer:   "Project timelines vary based on complexity. Small scoped builds typically take 2-3 weeks, medium builds 4-6 weeks, and complex systems 8-12 weeks. We'll provide a detailed timeline during our initial consultation.",
	},
	{
		Question: "Do you offer website maintenance and support?",
		Answer:   "Yes, we offer ongoing maintenance and support packages. This includes regular updates, security monitoring, performance optimization, and technical support to ensure your website runs smoothly.",
	},
	{
		Question: "What technologies do you use?",
		Answer:   "We specialize in modern web technologies including Next.js, React, TypeScript, and Tailwind CSS. We also work with various CMS platforms like Sanity and Contentful, depending on your project needs.",
	},
	{
		Question: "Can you help with SEO and digital marketing?",
		Answer:   "Absolutely. We build websites with SEO best practices in mind, including proper meta tags, structured data, and performance optimization. We can also integrate analytics and tracking tools to help you measure success.",
	},
	{
		Question: "What is your payment structure?",
		Answer:   "We typically work with a 50% upfront deposit and 50% upon project completion. For larger projects, we can arrange milestone-based payments. All pricing is transparent and agreed upon before work begins.",
	},
	{
		Question: "Do you work with clients outside Singapore?",
		Answer:   "Yes, we work with clients globally. Most of our communication happens online through video calls and project management tools, making remote collaboration seamless and efficient.",
	},
}

// Testimonials are the carousel slides.
var Testimonials = []Testimonial{
	{
		Quote: "Working with SGWB was a game-changer for our business. They delivered a stunning website that exceeded our expectations and significantly improved our conversion rates.",
		Name:  "Sarah Chen",
		Role:  "Founder, TechVenture",
	},
	{
		Quote: "Responsive and relentlessly hardworking on different aspects of website building. The team is experienced and I'd recommend them for rebuilding your website from scratch.",
		Name:  "Kevin Quah",
		Role:  "CEO, Digital Solutions",
	},
	{
		Quote: "The attention to detail and commitment to quality was outstanding. Our new e-commerce platform has transformed how we do business online.",
		Name:  "Michael Tan",
		Role:  "Director, RetailHub",
	},
	{
		Quote: "Professional, efficient, and creative. SGWB understood our vision and brought it to life with a modern, scalable web solution.",
		Name:  "Jessica Wong",
		Role:  "Marketing Head, StartupCo",
	},
}
