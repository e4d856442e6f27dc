// Package resrank ranks resumes against a job description by textual relevance.
//
// Documents are extracted (PDF or plain text), normalized (lowercase, no
// punctuation, no English stopwords), vectorized with TF-IDF over the job
// description plus all readable resumes, and scored by cosine similarity.
// Unreadable documents are skipped and reported as warnings.
//
//	r, _ := resrank.New(resrank.WithKeywordLimit(20))
//	res, err := r.Rank(ctx, jobDescription,
//	    resrank.Document{Name: "alice.pdf", Content: alicePDF},
//	    resrank.Document{Name: "bob.pdf", Content: bobPDF},
//	)
//	if err != nil { ... }
//	for _, row := range res.Results {
//	    fmt.Println(row.Rank, row.Name, row.DisplayScore())
//	}
//	_ = res.WriteCSV(os.Stdout)
//
// A Ranker is safe for concurrent use; every Rank call builds its own
// vocabulary and shares nothing with other calls.
package resrank
