package handlers

// HomeData is the body of the landing page.
type HomeData struct {
	HomeContent
	Testimonials TestimonialsView
}

// BuildHomeData constructs the landing page with the testimonial carousel at slide.
func BuildHomeData(slide int) HomeData {
	return HomeData{
		HomeContent:  Home,
		Testimonials: BuildTestimonials(Testimonials, slide, "/"),
	}
}

// CompanyData is the body of the company page.
type CompanyData struct {
	CompanyContent
	Testimonials TestimonialsView
}

// BuildCompanyData constructs the company page with the carousel at slide.
func BuildCompanyData(slide int) CompanyData {
	return CompanyData{
		CompanyContent: Company,
		Testimonials:   BuildTestimonials(Testimonials, slide, "/company"),
	}
}

// PricingData is the body of the pricing page.
type PricingData struct {
	PricingContent
	FAQ FAQView
}

// BuildPricingData constructs the pricing page with FAQ panel open expanded.
func BuildPricingData(open int) PricingData {
	return PricingData{
		PricingContent: Pricing,
		FAQ:            BuildFAQ(FAQs, open, "/pricing"),
	}
}
