package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/model"
	"github.com/ashwinyue/toolfinder/internal/repository"
)

// sampleTool 示例工具及其分类、标签名称
type sampleTool struct {
	tool       model.Tool
	categories []string
	tags       []string
}

var sampleCategories = []model.Category{
	{Name: "Image Generation", Icon: "fa-image", Description: "Create images from text prompts"},
	{Name: "Content Writing", Icon: "fa-pen-fancy", Description: "Generate blogs, articles, and copy"},
	{Name: "Audio Processing", Icon: "fa-microphone", Description: "Transcribe, translate, and enhance audio"},
	{Name: "Code Generation", Icon: "fa-code", Description: "Create and debug code with AI"},
	{Name: "Chatbots", Icon: "fa-comments", Description: "Customer service and assistance"},
	{Name: "Data Analysis", Icon: "fa-chart-pie", Description: "Insights and visualization from data"},
	{Name: "Video Editing", Icon: "fa-film", Description: "Auto-edit, enhance, and generate video"},
	{Name: "Translation", Icon: "fa-language", Description: "Translate content between languages"},
}

var sampleTags = []string{
	"Art", "Design", "Creative", "Open Source", "Customizable",
	"Productivity", "Automation", "Writing", "Marketing",
}

var sampleTools = []sampleTool{
	{
		tool: model.Tool{
			Name:        "DALL-E",
			Description: "Creates realistic images and art from a description in natural language. Offers variations, editing, and multiple styles.",
			CompanyName: "OpenAI",
			LogoURL:     "https://brandpalettes.com/wp-content/uploads/2022/02/DALL-E-logo.png",
			ImageURL:    "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1965&q=80",
			Rating:      "4.8",
			Pricing:     "Free trial, then $15/mo",
			WebsiteURL:  "https://openai.com/dall-e/",
			Featured:    true,
		},
		categories: []string{"Image Generation"},
		tags:       []string{"Art", "Design"},
	},
	{
		tool: model.Tool{
			Name:        "Midjourney",
			Description: "Discord-based AI image generation tool known for its artistic quality and stylized approach to creating visuals from text prompts.",
			CompanyName: "Midjourney, Inc.",
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e6/Midjourney_Emblem.png/600px-Midjourney_Emblem.png",
			ImageURL:    "https://images.unsplash.com/photo-1696454690178-29fe99bd607b?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1170&q=80",
			Rating:      "4.9",
			Pricing:     "$10-30/mo",
			WebsiteURL:  "https://www.midjourney.com/",
		},
		categories: []string{"Image Generation"},
		tags:       []string{"Art", "Creative"},
	},
	{
		tool: model.Tool{
			Name:        "Stable Diffusion",
			Description: "Open-source AI image generator that can be run locally or used through various interfaces. Known for flexibility and customization.",
			CompanyName: "Stability AI",
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/3/33/Stability_AI_logo.svg/1024px-Stability_AI_logo.svg.png",
			ImageURL:    "https://images.unsplash.com/photo-1684786075818-7ffba2bfdc98?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1170&q=80",
			Rating:      "4.7",
			Pricing:     "Free, Cloud: $10/mo",
			WebsiteURL:  "https://stability.ai/",
		},
		categories: []string{"Image Generation"},
		tags:       []string{"Open Source", "Customizable"},
	},
	{
		tool: model.Tool{
			Name:        "ChatGPT",
			Description: "Conversational AI assistant for text generation, answering questions, and creative writing.",
			CompanyName: "OpenAI",
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/0/04/ChatGPT_logo.svg/1024px-ChatGPT_logo.svg.png",
			ImageURL:    "https://images.unsplash.com/photo-1669570094762-828f3dfaf675?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1170&q=80",
			Rating:      "4.9",
			Pricing:     "Free / $20 mo",
			WebsiteURL:  "https://chat.openai.com/",
			Featured:    true,
		},
		categories: []string{"Chatbots"},
		tags:       []string{"Writing", "Productivity"},
	},
	{
		tool: model.Tool{
			Name:        "Jasper",
			Description: "AI content creation platform for marketing copy, blogs, social media posts and more.",
			CompanyName: "Jasper AI",
			LogoURL:     "https://www.jasper.ai/images/new-jasper-logo.svg",
			ImageURL:    "https://images.unsplash.com/photo-1526378722484-bd91ca387e72?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1169&q=80",
			Rating:      "4.7",
			Pricing:     "From $49/mo",
			WebsiteURL:  "https://www.jasper.ai/",
			Featured:    true,
		},
		categories: []string{"Content Writing"},
		tags:       []string{"Marketing", "Writing"},
	},
	{
		tool: model.Tool{
			Name:        "Notion AI",
			Description: "AI writing assistant integrated with Notion for drafting, editing, summarizing, and brainstorming.",
			CompanyName: "Notion",
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/4/45/Notion_app_logo.png",
			ImageURL:    "https://images.unsplash.com/photo-1610986603166-f78428624e76?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1170&q=80",
			Rating:      "4.6",
			Pricing:     "$10/mo add-on",
			WebsiteURL:  "https://www.notion.so/product/ai",
			Featured:    true,
		},
		categories: []string{"Content Writing"},
		tags:       []string{"Productivity", "Automation"},
	},
	{
		tool: model.Tool{
			Name:        "Descript",
			Description: "AI-powered audio and video editing tool with transcription, voice cloning, and Studio Sound.",
			CompanyName: "Descript",
			LogoURL:     "https://assets-global.website-files.com/61734ecee390bd3fe4fbfbb4/6347d1dc1099e74e06b1c46a_Frame%2016.svg",
			ImageURL:    "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1169&q=80",
			Rating:      "4.8",
			Pricing:     "Free / From $12/mo",
			WebsiteURL:  "https://www.descript.com/",
			Featured:    true,
		},
		categories: []string{"Audio Processing", "Video Editing"},
		tags:       []string{"Automation"},
	},
}

// SeedSampleData 写入示例目录数据，存储中已有工具时跳过
// 返回是否实际写入
func SeedSampleData(ctx context.Context, store repository.CatalogStore, logger *zap.Logger) (bool, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	count, err := store.CountTools(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count tools: %w", err)
	}
	if count > 0 {
		logger.Info("catalog not empty, skip seeding", zap.Int64("tools", count))
		return false, nil
	}

	categoryIDs := make(map[string]int64, len(sampleCategories))
	for _, c := range sampleCategories {
		category := c
		if err := store.CreateCategory(ctx, &category); err != nil {
			return false, fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		categoryIDs[category.Name] = category.ID
	}

	tagIDs := make(map[string]int64, len(sampleTags))
	for _, name := range sampleTags {
		tag := &model.Tag{Name: name}
		if err := store.CreateTag(ctx, tag); err != nil {
			return false, fmt.Errorf("failed to seed tag %q: %w", name, err)
		}
		tagIDs[name] = tag.ID
	}

	for _, sample := range sampleTools {
		tool := sample.tool
		if err := store.CreateTool(ctx, &tool); err != nil {
			return false, fmt.Errorf("failed to seed tool %q: %w", tool.Name, err)
		}
		for _, name := range sample.categories {
			if err := store.AddToolCategory(ctx, tool.ID, categoryIDs[name]); err != nil {
				return false, fmt.Errorf("failed to link %q to category %q: %w", tool.Name, name, err)
			}
		}
		for _, name := range sample.tags {
			if err := store.AddToolTag(ctx, tool.ID, tagIDs[name]); err != nil {
				return false, fmt.Errorf("failed to link %q to tag %q: %w", tool.Name, name, err)
			}
		}
	}

	logger.Info("sample catalog seeded",
		zap.Int("categories", len(sampleCategories)),
		zap.Int("tags", len(sampleTags)),
		zap.Int("tools", len(sampleTools)),
	)
	return true, nil
}
