package project

// localEats is the single project idea the generator hands out.
var localEats = Idea{
	Title: `Local Eats Explorer`,
	Description: `The "Local Eats Explorer" is a web application designed to help users ` +
		`discover and support local restaurants in their area. Users can search for ` +
		`restaurants by location, cuisine, rating, or current deals. Each restaurant will ` +
		`have a profile with a menu, photos, user reviews, and the option to book a table ` +
		`or order food online. On the backend, restaurant owners can manage their profile, ` +
		`update their menu, and respond to reviews.`,
	Stack: []Component{
		{
			Icon:  "🌐",
			Role:  "Frontend Technology",
			Name:  "React.js",
			Notes: "React.js will provide a dynamic and responsive user interface. Its component-based architecture makes it easy to manage the state of the restaurant profiles, user reviews, and search functionality",
		},
		{
			Icon:  "💾",
			Role:  "Backend Technology",
			Name:  "Node.js",
			Notes: "Node.js will serve as the runtime environment with Express framework simplifying the creation of RESTful APIs to interact with the frontend.",
		},
		{
			Icon:  "🗄️",
			Role:  "Database",
			Name:  "MongoDB",
			Notes: "MongoDB is a NoSQL database that is perfect for handling the schema-less data of various restaurants, user profiles, and reviews.",
		},
	},
	Tools: []Component{
		{
			Icon:  "🐳",
			Name:  "Docker",
			Notes: "Use Docker to containerize the application, ensuring that it works consistently across different development and production environments.",
		},
		{
			Icon:  "🗺️",
			Name:  "Google Maps API",
			Notes: "Integrate with Google Maps API to allow users to view restaurant locations and get directions.",
		},
		{
			Icon:  "💳",
			Name:  "Stripe",
			Notes: "Implement Stripe for handling online payments when users place an order or book a table.",
		},
		{
			Icon:  "💬",
			Name:  "Socket.IO",
			Notes: "Use Socket.IO to enable real-time bidirectional event-based communication for a live chat support feature for users to interact with restaurant owners.",
		},
		{
			Icon:  "🧪",
			Name:  "Jest",
			Notes: "Utilize Jest for writing unit and integration tests for both frontend and backend code to ensure application reliability.",
		},
	},
	Closing: "This project not only provides a useful service for food enthusiasts but also supports local businesses by giving them an online presence and direct channel to potential customers.",
}

var instructions = Guide{
	Title: "How to Customize Your Stack",
	Intro: "Welcome to the Project Generator! Follow these steps to customize the tech stack for your new project:",
	Steps: []string{
		"Select the frontend framework you'd like to use for your project.",
		"Choose the backend technology from the available options.",
		"Decide on the database that best fits your data storage needs.",
		"Check any additional tools or libraries you want to include.",
	},
	Outro: "As you make your selections, options that are not compatible will be disabled to ensure the integrity of your tech stack. Once you're satisfied with your choices, click on the 'Generate Project' button to create your custom setup.",
	Note:  "Note: You can always change your selections before finalizing your project.",
}
