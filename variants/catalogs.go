package variants

import "github.com/zucenko/codemaze/model"

var dots = []model.TokenKind{
	{Name: ".", Points: 1, Title: "Point"},
}

var corners = []model.HazardKind{
	{Name: "B", Color: "#FF0000"},
}

var practicesV3 = []model.TokenKind{
	{Name: "A11y", Points: 10},
	{Name: "UX", Points: 9},
	{Name: "TS", Points: 8},
	{Name: "TDD", Points: 7},
	{Name: "SEO", Points: 6},
	{Name: "KISS", Points: 5},
	{Name: "DRY", Points: 4},
	{Name: "A/B", Points: 3},
	{Name: "O(1)", Points: 2},
}

var practicesV4 = []model.TokenKind{
	{Name: "UX", Points: 10},
	{Name: "A11y", Points: 9},
	{Name: "O(1)", Points: 8},
	{Name: "TDD", Points: 7},
	{Name: "SEO", Points: 6},
	{Name: "KISS", Points: 5},
	{Name: "DRY", Points: 4},
	{Name: "A/B", Points: 3},
	{Name: "TS", Points: 2},
}

var smallBugs = []model.HazardKind{
	{Name: "Err", Color: "#FF0000"},
	{Name: "bug", Color: "#FF3333"},
	{Name: "O(n²)", Color: "#FF6666"},
	{Name: "any", Color: "#FF9999"},
	{Name: "NaN", Color: "#FFCCCC"},
	{Name: "404", Color: "#CC0000"},
	{Name: "mem", Color: "#990000"},
}

var practices = []model.TokenKind{
	{Name: "UX", Points: 10, Title: "User Experience",
		Description: "Designing with the user in mind for better usability."},
	{Name: "A11y", Points: 9, Title: "Accessibility",
		Description: "Ensuring your application is usable by people with disabilities."},
	{Name: "O(1)", Points: 8, Title: "Constant Time Complexity",
		Description: "Optimizing algorithms to run in constant time O(1) or at least linear time O(n). In Big O notation."},
	{Name: "TDD", Points: 7, Title: "Test-Driven Development",
		Description: "Writing tests before code to ensure functionality."},
	{Name: "KISS", Points: 6, Title: "Keep It Simple, Stupid",
		Description: "Simplifying code to make it more understandable and maintainable."},
	{Name: "YAGNI", Points: 5, Title: "You Aren't Gonna Need It",
		Description: "Avoiding unnecessary features to keep the codebase clean."},
	{Name: "i18n", Points: 5, Title: "Internationalization",
		Description: "Designing software to be adaptable to various languages and regions."},
	{Name: "DRY", Points: 4, Title: "Don't Repeat Yourself",
		Description: "Reducing repetition in code to improve maintainability."},
	{Name: "A/B", Points: 3, Title: "A/B Testing",
		Description: "Comparing two versions of a webpage or app to see which performs better."},
	{Name: "TS", Points: 2, Title: "TypeScript",
		Description: "Using TypeScript for type safety and better code quality."},
	{Name: "SEO", Points: 1, Title: "Search Engine Optimization",
		Description: "Improving the visibility of a website in search engines."},
	{Name: "CI/CD", Points: 7, Title: "Continuous Integration/Continuous Deployment",
		Description: "Automating the integration, testing and deployment of code changes."},
	{Name: "SOLID", Points: 6, Title: "SOLID Principles",
		Description: "A set of design principles for writing maintainable and scalable code: single responsibility, open-closed, Liskov substitution, interface segregation, dependency inversion."},
	{Name: "DDD", Points: 5, Title: "Domain-Driven Design",
		Description: "Designing software based on the business domain and a good understanding of business needs."},
	{Name: "BEM", Points: 4, Title: "Block Element Modifier",
		Description: "A methodology for writing clean and maintainable CSS."},
	{Name: "SemVer", Points: 3, Title: "Semantic Versioning",
		Description: "MAJOR.MINOR.PATCH, so minor updates stay backward compatible and versioning is predictable."},
	{Name: "SSR", Points: 2, Title: "Server-Side Rendering",
		Description: "Rendering web pages on the server for better performance and SEO."},
	{Name: "SPA", Points: 1, Title: "Single Page Application",
		Description: "Web applications that load a single HTML page and update it as the user interacts."},
}

var bugs = []model.HazardKind{
	{Name: "🐛", Color: "#FF0000"},
	{Name: "💣", Color: "#FF3333"},
	{Name: "🔥", Color: "#FF6666"},
	{Name: "⚠️", Color: "#FF9999"},
	{Name: "Error", Color: "#990000"},
	{Name: "404", Color: "#CC0000"},
	{Name: "O(n²)", Color: "#FF6666"},
	{Name: "any", Color: "#FF9999"},
	{Name: "NaN", Color: "#FFCCCC"},
	{Name: "Legacy", Color: "#FF6600"},
	{Name: "Debt", Color: "#993300"},
}
