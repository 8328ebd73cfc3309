package analyze

import (
	"github.com/b08x/video-annotator/internal/annotation"
	"google.golang.org/genai"
)

// The function tools offered to the model. Their names and schemas are the
// wire contract the normalizer dispatches on.
func functionDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        annotation.FuncSetTimecodes,
			Description: "Set the timecodes for the video with associated text",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"timecodes": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"time": {Type: genai.TypeString},
								"text": {Type: genai.TypeString},
							},
							Required: []string{"time", "text"},
						},
					},
				},
				Required: []string{"timecodes"},
			},
		},
		{
			Name:        annotation.FuncSetTimecodesWithObjects,
			Description: "Set the timecodes for the video with associated text and object list",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"timecodes": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"time": {Type: genai.TypeString},
								"text": {Type: genai.TypeString},
								"objects": {
									Type:  genai.TypeArray,
									Items: &genai.Schema{Type: genai.TypeString},
								},
							},
							Required: []string{"time", "text", "objects"},
						},
					},
				},
				Required: []string{"timecodes"},
			},
		},
		{
			Name:        annotation.FuncSetTimecodesWithNumericValues,
			Description: "Set the timecodes for the video with associated numeric values",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"timecodes": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"time":  {Type: genai.TypeString},
								"value": {Type: genai.TypeNumber},
							},
							Required: []string{"time", "value"},
						},
					},
				},
				Required: []string{"timecodes"},
			},
		},
		{
			Name:        annotation.FuncSetRegisterAnalysisResult,
			Description: "Set the analysis result from a register-based prompt as a JSON object.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					// properties left open so register prompts can vary
					// their JSON structure freely
					"analysisResult": {
						Type:        genai.TypeObject,
						Description: "The JSON object containing the analysis. Structure depends on the specific register prompt used.",
					},
				},
				Required: []string{"analysisResult"},
			},
		},
		{
			Name:        annotation.FuncSetTopicSegments,
			Description: "Sets the identified topic segments for the video. Each segment includes a start time, an end time, and a textual description of the topic discussed or shown during that segment.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"segments": {
						Type:        genai.TypeArray,
						Description: "An array of topic segments identified in the video.",
						Items: &genai.Schema{
							Type:        genai.TypeObject,
							Description: "A single topic segment with its time boundaries and description.",
							Properties: map[string]*genai.Schema{
								"startTime": {
									Type:        genai.TypeString,
									Description: "The start time of the topic segment in HH:MM:SS or MM:SS format.",
								},
								"endTime": {
									Type:        genai.TypeString,
									Description: "The end time of the topic segment in HH:MM:SS or MM:SS format.",
								},
								"topicDescription": {
									Type:        genai.TypeString,
									Description: "A concise (1-2 sentences) description of the main topic covered in this segment of the video.",
								},
							},
							Required: []string{"startTime", "endTime", "topicDescription"},
						},
					},
				},
				Required: []string{"segments"},
			},
		},
	}
}
