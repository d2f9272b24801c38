package slides

// Builtin returns the lesson deck compiled into the binary. The deck walks
// through core backend-engineering concepts in teaching order.
func Builtin() Deck {
	return Deck{
		{
			ID:          "api",
			Title:       "What is an API?",
			Description: "An API (Application Programming Interface) is a contract that lets two programs talk to each other. The client asks for something in an agreed format, and the server answers in an agreed format, without either side knowing how the other is built.",
			KeyPoints: []string{
				"Defines endpoints, request shapes, and response shapes",
				"Decouples the client from the server's implementation",
				"REST over HTTP is the most common style for web backends",
				"Versioning keeps old clients working while the API evolves",
			},
			Example: "When a weather app shows today's forecast, it calls a weather provider's API over HTTPS and renders the JSON it gets back.",
			Color:   "#42A5F5",
			Icon:    "🔌",
			Code:    "GET /v1/forecast?city=berlin\n200 OK\n{\"city\": \"berlin\", \"high\": 21, \"low\": 13}",
		},
		{
			ID:          "http",
			Title:       "HTTP: the web's protocol",
			Description: "HTTP is a stateless request-response protocol. Every interaction is a method applied to a URL, carrying headers and an optional body, answered with a status code that tells the client exactly what happened.",
			KeyPoints: []string{
				"Methods express intent: GET reads, POST creates, PUT replaces, DELETE removes",
				"Status codes are the contract: 2xx success, 4xx client fault, 5xx server fault",
				"Headers carry metadata such as content type, caching rules, and auth tokens",
				"Statelessness means every request must carry everything the server needs",
			},
			Example: "Submitting a signup form sends a POST request with a JSON body; the server answers 201 Created with the new account's location.",
			Color:   "#66BB6A",
			Icon:    "🌐",
			Code:    "POST /v1/users HTTP/1.1\nContent-Type: application/json\n\n{\"email\": \"ada@example.com\"}",
		},
		{
			ID:          "databases",
			Title:       "Databases and persistence",
			Description: "A database is where a backend keeps the state that must survive restarts. Relational databases organize data into tables with enforced relationships, while document and key-value stores trade structure for flexibility and speed.",
			KeyPoints: []string{
				"Relational databases enforce schemas and join related data with SQL",
				"Transactions make a group of writes succeed or fail as one unit",
				"Indexes speed up reads at the cost of slower writes and more storage",
				"NoSQL stores scale horizontally but relax consistency guarantees",
			},
			Example: "An online shop stores orders in PostgreSQL so that a crash mid-checkout never charges a customer for an order that was not recorded.",
			Color:   "#AB47BC",
			Icon:    "🗄️",
			Code:    "SELECT o.id, o.total\nFROM orders o\nJOIN users u ON u.id = o.user_id\nWHERE u.email = $1;",
		},
		{
			ID:          "caching",
			Title:       "Caching",
			Description: "A cache keeps copies of expensive results close to where they are needed, so repeated requests are served in microseconds instead of recomputing or re-fetching. The hard part is invalidation: knowing when a cached copy is no longer true.",
			KeyPoints: []string{
				"Caches sit at many layers: browser, CDN, application, database",
				"TTLs bound staleness by expiring entries after a fixed time",
				"Cache-aside is the common pattern: read cache, miss, load, store",
				"Invalidation bugs serve stale data; over-invalidation kills the benefit",
			},
			Example: "A news site caches its rendered front page in Redis for thirty seconds, cutting database load by orders of magnitude during traffic spikes.",
			Color:   "#FFA726",
			Icon:    "⚡",
			Code:    "val, ok := cache.Get(key)\nif !ok {\n    val = db.Load(key)\n    cache.Set(key, val, 30*time.Second)\n}",
		},
		{
			ID:          "load-balancing",
			Title:       "Load balancing",
			Description: "A load balancer spreads incoming traffic across many identical servers, so no single machine is overwhelmed and the failure of one instance is invisible to users. It is the front door that makes horizontal scaling work.",
			KeyPoints: []string{
				"Distributes requests by round-robin, least-connections, or hashing",
				"Health checks pull dead instances out of rotation automatically",
				"Enables zero-downtime deploys by draining one instance at a time",
				"Sticky sessions pin a user to one server, at the cost of even spread",
			},
			Example: "A ticketing site behind an L7 load balancer survives a sale rush because requests fan out across forty app servers instead of hitting one.",
			Color:   "#EF5350",
			Icon:    "⚖️",
		},
		{
			ID:          "queues",
			Title:       "Message queues",
			Description: "A message queue decouples the code that produces work from the code that performs it. Producers enqueue jobs and move on; consumers process them at their own pace. Spikes become backlogs instead of outages.",
			KeyPoints: []string{
				"Producers and consumers scale and fail independently",
				"Acknowledgements ensure a job is not lost if a worker dies",
				"At-least-once delivery means consumers must be idempotent",
				"Dead-letter queues capture jobs that keep failing for inspection",
			},
			Example: "When a user uploads a video, the web server enqueues a transcode job and returns immediately; a fleet of workers processes the queue.",
			Color:   "#26C6DA",
			Icon:    "📬",
		},
		{
			ID:          "auth",
			Title:       "Authentication and authorization",
			Description: "Authentication proves who a caller is; authorization decides what that caller may do. Backends verify identity once, then carry it on every request as a session or a signed token that services can check without a central lookup.",
			KeyPoints: []string{
				"Passwords are stored only as salted, slow hashes",
				"Sessions keep state server-side; JWTs push signed state to the client",
				"OAuth lets users grant apps limited access without sharing passwords",
				"Authorization checks belong on the server, never only in the UI",
			},
			Example: "Logging into a code host with Google uses OAuth: the host never sees the password, only a token scoped to identity.",
			Color:   "#8D6E63",
			Icon:    "🔐",
		},
		{
			ID:          "scaling",
			Title:       "Scaling strategies",
			Description: "Scaling up buys a bigger machine; scaling out adds more machines. Out-scaling is bounded only by how well the workload shards, which is why stateless services and partitioned data are the backbone of large systems.",
			KeyPoints: []string{
				"Vertical scaling is simple but hits a hardware ceiling",
				"Horizontal scaling needs stateless services behind a balancer",
				"Sharding splits data across nodes by key ranges or hashes",
				"Replication adds read capacity and survives node loss",
			},
			Example: "A social network shards its user table by user ID across hundreds of database nodes, so no single node holds more than it can serve.",
			Color:   "#78909C",
			Icon:    "📈",
		},
	}
}
