package catalog

import (
	"errors"
	"math/rand"
)

// Candidate models grouped by provider. Only the groups concatenated into
// Models below are eligible for selection; the rest stay listed so enabling
// a provider is a one-line change.
var openAIModels = []string{
	"openai/gpt-5-pro",
	"openai/gpt-5-codex",
	"openai/gpt-5-chat",
	"openai/gpt-5",
	"openai/gpt-5-mini",
	"openai/gpt-5-nano",
	"openai/gpt-oss-120b",
	"openai/gpt-oss-20b",
}

var googleModels = []string{
	"google/gemini-2.5-pro",
	"google/gemini-2.5-flash",
	"google/gemini-2.5-flash-lite",
}

var deepseekModels = []string{
	"deepseek/deepseek-v3.1-terminus",
	"deepseek/deepseek-chat-v3.1",
	"deepseek/deepseek-r1-0528",
}

var qwenModels = []string{
	"qwen/qwen3-vl-235b-a22b-thinking",
	"qwen/qwen3-vl-235b-a22b-instruct",
	"qwen/qwen3-coder-plus",
	"qwen/qwen3-next-80b-a3b-thinking",
	"qwen/qwen3-next-80b-a3b-instruct",
	"qwen/qwen-plus-2025-07-28",
	"qwen/qwen3-coder-30b-a3b-instruct",
}

// Disabled providers.
var (
	xaiModels = []string{"x-ai/grok-4-fast", "x-ai/grok-code-fast-1"}
	zaiModels = []string{"z-ai/glm-4.6", "z-ai/glm-4.5v"}

	alibabaModels = []string{
		"alibaba/tongyi-deepresearch-30b-a3b:free",
		"alibaba/tongyi-deepresearch-30b-a3b",
	}
	nvidiaModels = []string{
		"nvidia/nemotron-nano-9b-v2:free",
		"nvidia/nemotron-nano-9b-v2",
	}
	baiduModels = []string{"baidu/ernie-4.5-21b-a3b", "baidu/ernie-4.5-vl-28b-a3b"}

	nousResearchModels = []string{
		"nousresearch/hermes-4-70b",
		"nousresearch/hermes-4-405b",
	}
	moonshotModels  = []string{"moonshotai/kimi-k2-0905"}
	arceeModels     = []string{"arcee-ai/afm-4.5b"}
	opengvlabModels = []string{"opengvlab/internvl3-78b"}
	deepcogitoModels = []string{
		"deepcogito/cogito-v2-preview-llama-109b-moe",
	}
	stepfunModels = []string{"stepfun-ai/step3"}
)

// Models is the enabled pool a daily generation draws from.
var Models = concat(
	openAIModels,
	googleModels,
	deepseekModels,
	qwenModels,
)

var ErrEmptyCatalog = errors.New("model catalog is empty")

func concat(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Select draws one model uniformly at random from the enabled pool.
func Select(rng *rand.Rand) (string, error) {
	return SelectFrom(rng, Models)
}

// SelectFrom draws uniformly from an explicit pool.
func SelectFrom(rng *rand.Rand, models []string) (string, error) {
	if len(models) == 0 {
		return "", ErrEmptyCatalog
	}
	return models[rng.Intn(len(models))], nil
}
