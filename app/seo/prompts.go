package seo

import (
	"strings"
	"text/template"
)

const (
	KindMetadata = "metadata"
	KindRewrite  = "rewrite"
	KindSummary  = "summary"
)

var prompts = template.Must(template.New("prompts").Parse(`
{{define "metadata"}}Analyze the following content and generate:
1. A concise and meaningful title (within 60 characters) with the keyphrase "{{.Keyphrase}}" at the beginning of the title. Ensure the title is exactly as the keyphrase or a close variation of it. Do not include any numbering at the start of the title.
2. A relevant slug derived from the title, ensuring the keyphrase is part of the slug.
3. A 2-3 word focus keyphrase that encapsulates the main topic of the content.
4. At least 50 highly relevant, specific SEO-related tags that directly reflect the content's key themes.
   - Focus on niche and specific keywords.
   - Avoid generic tags like "news", "article", or "updates".
   - Consider long-tail keywords and variations of key phrases that would improve search engine ranking.

Answer with exactly four lines in this order and format:
Title: <title>
Slug: <slug>
Focus Keyphrase: <focus keyphrase>
Tags: <tag>, <tag>, <tag>

Content: {{.Content}}{{end}}

{{define "rewrite"}}Rewrite the following content for a news website called '{{.Publication}}', ensuring:
- The content is unique and untraceable to the original source.
- A professional, engaging, and user-friendly tone.
- Include an internal link: <a href="{{.InboundLink}}">{{.Publication}}</a>, naturally within the content.
- Embed the keyword '{{.Keyword}}' with an external link: <a href="{{.OutboundLink}}" target="_blank">{{.Keyword}}</a> in a natural context. Ensure this keyword is hyperlinked exactly where it appears in the text.
- Ensure the content has at least 300 words.
- Focus on using active voice, reducing passive voice, and shortening long sentences.
- Include transition words where necessary to improve readability and SEO.
- Add relevant images (optional) with alt text matching the keyphrase "{{.Keyphrase}}" if possible.
- Ensure the HTML is clean and valid with proper semantic tags.

Content: {{.Content}}{{end}}

{{define "summary"}}Create a concise, 156-character meta description for the following content, ensuring it's clear and concise:

{{.Content}}{{end}}
`))

type metadataPromptData struct {
	Keyphrase string
	Content   string
}

type rewritePromptData struct {
	RewriteRequest
	Publication string
}

type summaryPromptData struct {
	Content string
}

func renderPrompt(name string, data any) (string, error) {
	var buf strings.Builder
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
