package profile

// Profile describes the publication the rewritten articles are produced for
// and the knobs of every model call.
type Profile struct {
	Publication string `yaml:"publication"`
	Author      string `yaml:"author"`
	Model       string `yaml:"model"` // overrides the configured model when set

	Metadata CallSettings `yaml:"metadata"`
	Rewrite  CallSettings `yaml:"rewrite"`
	Summary  CallSettings `yaml:"summary"`
}

type CallSettings struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

const DefaultPublication = "The Hans Bharat"

var (
	DefaultMetadata = CallSettings{MaxTokens: 600, Temperature: 0.5}
	DefaultRewrite  = CallSettings{MaxTokens: 1000, Temperature: 0.7}
	DefaultSummary  = CallSettings{MaxTokens: 50, Temperature: 0.5}
)

func Default() *Profile {
	return &Profile{
		Publication: DefaultPublication,
		Author:      DefaultPublication,
		Metadata:    DefaultMetadata,
		Rewrite:     DefaultRewrite,
		Summary:     DefaultSummary,
	}
}
