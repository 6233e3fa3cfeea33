package vocab

// Default returns the built-in vocabulary used when no vocabulary file
// is configured. Deployments with their own taxonomy should supply a
// file instead; these lists exist so a fresh install extracts something
// useful out of the box.
func Default() *Vocabulary {
	v := &Vocabulary{
		Skills: []string{
			"python",
			"java",
			"javascript",
			"typescript",
			"go",
			"rust",
			"react",
			"node",
			"node.js",
			"aws",
			"lambda",
			"dynamodb",
			"s3",
			"kubernetes",
			"docker",
			"sql",
			"nosql",
			"postgres",
			"mysql",
			"mongodb",
			"redis",
			"terraform",
			"jenkins",
			"git",
			"rest",
			"api",
			"grpc",
			"machine learning",
			"data science",
			"pandas",
			"numpy",
		},
		Titles: []string{
			"software engineer",
			"senior software engineer",
			"staff engineer",
			"backend engineer",
			"frontend engineer",
			"full stack developer",
			"software developer",
			"data engineer",
			"data scientist",
			"machine learning engineer",
			"devops engineer",
			"site reliability engineer",
			"engineering manager",
			"technical lead",
			"solutions architect",
			"systems analyst",
		},
	}
	v.normalize()
	return v
}
