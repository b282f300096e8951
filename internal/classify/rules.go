// Package classify decides whether a candidate term is a real skill, and if
// so which category it belongs to and with what confidence.
package classify

import "regexp"

// denyRule rejects a term as a non-skill. The deny table is a union test:
// any match rejects, so order is not significant, but the table runs in full
// before category matching.
type denyRule struct {
	name string
	re   *regexp.Regexp
}

var denyRules = []denyRule{
	{"currency code", regexp.MustCompile(`(?i)^(USD|EUR|GBP|CAD|AUD|CHF|JPY|CNY|INR|BRL|MXN|SEK|NOK|DKK|PLN)$`)},
	{"two-letter code", regexp.MustCompile(`^[A-Za-z]{2}$`)},
	{"region code", regexp.MustCompile(`(?i)^(EMEA|APAC|LATAM|NORAM|ANZ)$`)},
	{"HR acronym", regexp.MustCompile(`(?i)^(PhD|MBA|BSc|MSc|EEO|EOE|PTO|401k|GPA|CV|KPI|OKR)$`)},
	{"admin code", regexp.MustCompile(`(?i)^[a-z]{1,3}-\d+$`)},
	{"day name", regexp.MustCompile(`(?i)^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)$`)},
	{"month name", regexp.MustCompile(`(?i)^(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)$`)},
	{"numeric", regexp.MustCompile(`^\d+([.,]\d+)?$`)},
	{"generic filler", regexp.MustCompile(`(?i)^(and|the|with|for|you|your|our|are|will|team|teams|work|working|role|job|jobs|year|years|experience|skill|skills|strong|ability|excellent|knowledge|plus|bonus|benefit|benefits|salary|remote|hybrid|onsite|full[- ]?time|part[- ]?time|required|preferred)$`)},
	{"multilingual filler", regexp.MustCompile(`(?i)^(und|der|die|das|mit|für|bei|les|des|avec|pour|nous|para|con|una|los|las|het|van|voor|och|med|att)$`)},
}

// categoryRule assigns a category and base confidence to a whitelisted term.
// The table is ordered: the first matching category wins, and the lists are
// kept disjoint so order only matters as a tiebreak of last resort.
type categoryRule struct {
	category   string
	confidence float64
	re         *regexp.Regexp
}

var categoryRules = []categoryRule{
	{"Languages", 0.95, regexp.MustCompile(`(?i)^(Go|Golang|Python|Java|JavaScript|TypeScript|Rust|Kotlin|Swift|Scala|Ruby|PHP|C\+\+|C#|Elixir|Erlang|Haskell|Clojure|Perl|Dart|Julia|Lua|Zig)$`)},
	{"Frameworks", 0.85, regexp.MustCompile(`(?i)^(React|Angular|Vue|Svelte|Django|Flask|FastAPI|Spring|Spring Boot|Rails|Laravel|Symfony|Express|Next\.?js|Nuxt|Gin|Echo|Fiber|Phoenix|ASP\.NET|\.NET)$`)},
	{"Cloud & Infrastructure", 0.9, regexp.MustCompile(`(?i)^(AWS|Azure|GCP|Kubernetes|Docker|Terraform|Ansible|Helm|OpenShift|CloudFormation|Pulumi|Nomad|Consul|Vault|Istio)$`)},
	{"Databases", 0.9, regexp.MustCompile(`(?i)^(PostgreSQL|Postgres|MySQL|MariaDB|MongoDB|Redis|Cassandra|DynamoDB|Elasticsearch|Snowflake|BigQuery|Redshift|SQLite|Oracle|CockroachDB|ClickHouse|Neo4j|Memcached)$`)},
	{"AI & Machine Learning", 0.85, regexp.MustCompile(`(?i)^(TensorFlow|PyTorch|Keras|scikit[- ]?learn|XGBoost|LangChain|Hugging ?Face|OpenCV|spaCy|NLTK|MLflow|Kubeflow|LightGBM)$`)},
	{"Data Engineering", 0.85, regexp.MustCompile(`(?i)^(Spark|Kafka|Airflow|Flink|Hadoop|dbt|Databricks|Beam|NiFi|Trino|Presto|Iceberg)$`)},
	{"DevOps & Tooling", 0.8, regexp.MustCompile(`(?i)^(Git|GitHub|GitLab|Bitbucket|Jenkins|CircleCI|ArgoCD|Prometheus|Grafana|Datadog|Splunk|PagerDuty|Bazel|GraphQL|gRPC)$`)},
}

// techSuffixes are token endings that raise the heuristic score for terms
// absent from every whitelist. Matched case-insensitively as proper suffixes.
var techSuffixes = []string{"DB", "ML", "AI", "API", "SDK", "CLI", "JS", "TS", "IO"}
