package chatbot

import "codecraft-agent/internal/domain"

// templates maps every category to its static recommendation record. Built
// once at init, read-only afterwards. GetTemplate falls back to the general
// entry, so lookup has no failure mode.
var templates = map[domain.Category]domain.ResponseTemplate{
	domain.CategoryStudentExam: {
		Advice:   "Excellent choice! A student exam system is crucial for modern educational institutions. Our recommendation is to prioritize data security, user experience, and scalability from the start.",
		Duration: "📅 Development Timeline: 4-8 weeks (including testing and deployment)",
		Features: []string{
			"🔐 Secure user authentication (students, teachers, administrators)",
			"📚 Comprehensive student profile management",
			"📋 Advanced exam scheduling with automated reminders",
			"🧠 Intelligent question bank with categorization",
			"⚡ Real-time auto-grading and result calculation",
			"📊 Interactive dashboards and performance analytics",
			"📱 Mobile-responsive design for all devices",
			"💾 Automated backups and data export capabilities",
			"🔍 Advanced search and filtering system",
			"📧 Integration with email/SMS notification systems",
		},
		Technologies: []string{
			"Backend: Laravel 12.x with PHP 8.3+",
			"Frontend: React.js with Tailwind CSS (via Laravel Breeze)",
			"Database: MySQL 8.0 with Redis caching",
			"Mobile: Flutter 3.x for native iOS/Android apps",
			"Deployment: Laravel Forge with AWS or DigitalOcean",
			"Testing: PHPUnit with Laravel Dusk for E2E testing",
		},
		Budget: "💰 Investment Range: $1,200 - $3,500<br><small>(Based on features and team size - includes 3 months support)</small>",
		Terms: []string{
			"💳 Payment: 40% upfront, 30% at milestone delivery, 30% on launch",
			"🔄 Revisions: 3 rounds of revisions included",
			"⏰ Timeline: Fixed delivery date with progress tracking",
			"📜 Ownership: Full source code ownership upon final payment",
			"🔒 Security: GDPR compliant with data encryption",
			"📞 Support: 90 days free technical support post-launch",
		},
		Summary: "A comprehensive student exam system will revolutionize your institution's assessment process. Our Laravel + React solution ensures scalability, security, and exceptional user experience.",
		Questions: []string{
			"🎯 What specific assessment types do you need to support?",
			"📊 Do you require integration with existing student information systems?",
			"💻 Would you prefer a web-only solution or mobile apps as well?",
			"🕒 What is your target launch date?",
			"💼 Do you need ongoing maintenance and support services?",
		},
	},
	domain.CategoryInventory: {
		Advice:   "Inventory management is the backbone of efficient operations. We recommend implementing real-time tracking and automated alerts to minimize stock discrepancies.",
		Duration: "📅 Development Timeline: 6-10 weeks (including warehouse integration)",
		Features: []string{
			"📦 Complete product catalog with multi-media support",
			"📊 Real-time stock level monitoring with critical alerts",
			"📋 Automated purchase order generation",
			"💳 Integrated sales and POS system",
			"📱 Barcode and QR code scanning capabilities",
			"📈 Advanced analytics and forecasting tools",
			"🏢 Multi-warehouse and location management",
			"🔐 Role-based access control for different users",
			"📊 Customizable reporting and export functions",
			"⚡ API integration for third-party systems",
		},
		Technologies: []string{
			"Backend: Laravel 12.x with Queue system for background jobs",
			"Frontend: Vue.js 3.x with Composition API",
			"Database: PostgreSQL with TimescaleDB extension",
			"Mobile: React Native with offline-first architecture",
			"Hardware: Barcode scanner SDK integration",
			"Real-time: Laravel Echo with Pusher WebSockets",
		},
		Budget: "💰 Investment Range: $2,000 - $5,000<br><small>(Includes hardware integration and 6 months support)</small>",
		Terms: []string{
			"💳 Payment: 30% upfront, 40% at beta, 30% on production",
			"🔄 Revisions: Unlimited minor changes during development",
			"⏰ Timeline: Agile development with bi-weekly sprints",
			"📜 Ownership: Complete codebase transfer on completion",
			"🔒 Security: PCI DSS compliant for payment processing",
			"📞 Support: 6 months priority support included",
		},
		Summary: "Transform your inventory operations with our comprehensive management system. Real-time tracking and intelligent automation will optimize your supply chain efficiency.",
		Questions: []string{
			"📦 What types of products do you need to track?",
			"🏢 Do you operate multiple warehouse locations?",
			"📱 Do you need mobile scanning capabilities for staff?",
			"💻 Are there existing systems that need integration?",
			"📊 What key performance indicators matter most to you?",
		},
	},
	domain.CategoryEcommerce: {
		Advice:   "E-commerce success depends on conversion rates and customer experience. We recommend focusing on mobile-first design and seamless checkout flows.",
		Duration: "📅 Development Timeline: 8-14 weeks (including payment gateway setup)",
		Features: []string{
			"🛍️ Advanced product catalog with variant support",
			"🛒 Intelligent shopping cart with abandoned cart recovery",
			"💳 Multiple payment gateway integrations (Stripe, PayPal, etc.)",
			"🚚 Real-time shipping calculation and tracking",
			"⭐ Customer review and rating system",
			"🔍 Advanced search with autocomplete and filters",
			"📧 Marketing automation and email campaigns",
			"📊 Complete analytics and conversion tracking",
			"🔐 Enterprise-grade security and SSL encryption",
			"📱 Progressive Web App (PWA) capabilities",
		},
		Technologies: []string{
			"Backend: Laravel 12.x with Laravel Cashier",
			"Frontend: Next.js 14 with App Router",
			"Database: MySQL with Elasticsearch for search",
			"Payments: Stripe Connect with fraud detection",
			"CDN: Cloudflare for global content delivery",
			"Analytics: Google Analytics 4 integration",
		},
		Budget: "💰 Investment Range: $3,500 - $8,000<br><small>(Scalable pricing based on expected monthly revenue)</small>",
		Terms: []string{
			"💳 Payment: 25% upfront, 50% at soft launch, 25% final",
			"🔄 Revisions: A/B testing included for key pages",
			"⏰ Timeline: Phased rollout with MVP in 6 weeks",
			"📜 Ownership: Full ownership with source code escrow",
			"🔒 Security: SOC 2 Type II compliant architecture",
			"📞 Support: 12 months dedicated account management",
		},
		Summary: "Launch a high-converting e-commerce platform that scales with your business. Our solution combines cutting-edge technology with proven UX principles for maximum ROI.",
		Questions: []string{
			"🛍️ What is your target average order value?",
			"🌍 Do you plan international expansion?",
			"💳 Which payment methods are essential for your customers?",
			"📱 Do you need a mobile app in addition to web?",
			"📈 What are your key performance metrics for success?",
		},
	},
	domain.CategoryBlog: {
		Advice:   "A content platform lives or dies by its editorial workflow. We recommend investing in a clean authoring experience and SEO fundamentals before any advanced features.",
		Duration: "📅 Development Timeline: 3-6 weeks (including content migration)",
		Features: []string{
			"✍️ Rich text editor with draft and revision history",
			"🗂️ Category and tag management with friendly URLs",
			"📅 Scheduled publishing and editorial calendar",
			"💬 Moderated commenting with spam protection",
			"🔍 SEO metadata, sitemaps, and social previews",
			"📊 Author analytics and post performance tracking",
			"📱 Responsive, accessibility-minded reading experience",
			"📧 Newsletter signup and RSS feeds",
			"🔐 Role-based authoring (admin, editor, contributor)",
			"🖼️ Media library with image optimization",
		},
		Technologies: []string{
			"Backend: Laravel 12.x with PHP 8.3+",
			"Frontend: Blade templates with Alpine.js",
			"Database: MySQL 8.0 with full-text search",
			"Caching: Redis for page and fragment caching",
			"Deployment: Laravel Forge with automated backups",
			"Testing: PHPUnit with feature test coverage",
		},
		Budget: "💰 Investment Range: $800 - $2,500<br><small>(Includes theme customization and 2 months support)</small>",
		Terms: []string{
			"💳 Payment: 50% upfront, 50% on launch",
			"🔄 Revisions: 2 rounds of design revisions included",
			"⏰ Timeline: Fixed scope with weekly demos",
			"📜 Ownership: Full source code ownership upon final payment",
			"🔒 Security: Hardened authentication and backups",
			"📞 Support: 60 days free technical support post-launch",
		},
		Summary: "A focused publishing platform gets your content in front of readers fast. Our Laravel solution keeps authoring simple while staying ready for growth.",
		Questions: []string{
			"✍️ How many authors will publish regularly?",
			"🗂️ Do you have existing content that needs migrating?",
			"💬 Do you want open comments, moderated comments, or none?",
			"🔍 How important is search engine ranking to your goals?",
			"📧 Should readers be able to subscribe to updates?",
		},
	},
	domain.CategoryGeneral: {
		Advice:   "Based on your description, this appears to be a custom software solution. To provide more specific recommendations, please include details about your industry, target users, and key objectives.",
		Duration: "📅 Development Timeline: 4-12 weeks (custom assessment required)",
		Features: []string{
			"👥 User authentication and role management",
			"📊 Data management with full CRUD operations",
			"📱 Fully responsive design across all devices",
			"📈 Built-in analytics and reporting tools",
			"🔔 Real-time notifications and alerts",
			"🔍 Advanced search and filtering capabilities",
			"🔐 Enterprise-grade security implementation",
			"📱 Mobile-first responsive architecture",
			"⚡ Performance optimization and caching",
			"🔌 API-ready architecture for future integrations",
		},
		Technologies: []string{
			"Backend: Laravel 12.x (PHP 8.3+)",
			"Frontend: Modern JavaScript framework (React/Vue)",
			"Database: MySQL/PostgreSQL with Redis caching",
			"API: RESTful APIs with Laravel Sanctum",
			"Deployment: Docker containers with CI/CD pipeline",
			"Testing: Comprehensive unit and integration tests",
		},
		Budget: "💰 Investment Range: $1,000 - $6,000<br><small>(Preliminary estimate - detailed quote after requirements analysis)</small>",
		Terms: []string{
			"💳 Payment: Flexible terms based on project scope",
			"🔄 Revisions: Iterative development with client feedback",
			"⏰ Timeline: Agile methodology with sprint planning",
			"📜 Ownership: Full transfer upon project completion",
			"🔒 Security: Industry-standard security practices",
			"📞 Support: 60 days free support post-launch",
		},
		Summary: "We're excited about your project vision! Our team specializes in custom software solutions that deliver measurable business value. Let's schedule a detailed requirements discussion.",
		Questions: []string{
			"🎯 What specific business problem are you trying to solve?",
			"👥 Who are your primary end users and stakeholders?",
			"📊 What key metrics will define project success?",
			"💻 Do you have existing systems that need integration?",
			"🕒 What is your ideal timeline for project completion?",
		},
	},
}

// GetTemplate returns the recommendation record for a category. Unknown
// categories resolve to the general template, so there is no miss case.
func GetTemplate(category domain.Category) domain.ResponseTemplate {
	if t, ok := templates[category]; ok {
		return t
	}
	return templates[domain.CategoryGeneral]
}
