package ops

import (
	"context"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func (a *App) LoadArticles(ctx context.Context) ([]model.Article, error) {
	c := a.Stores.Knowledge.Articles
	mark := c.Mark()
	list, err := a.Source.ListArticles(ctx)
	if err != nil {
		return nil, a.fail("load_articles", "Load Failed", err)
	}
	apply(a, c, mark, list)
	return c.Items(), nil
}

// CreateArticle takes tags as typed in the form: comma separated.
func (a *App) CreateArticle(ctx context.Context, title, tags, markdown string) (model.Article, error) {
	if err := required("title", title); err != nil {
		return model.Article{}, err
	}
	in := model.NewArticle{Title: title, Tags: model.ParseTags(tags), Markdown: markdown}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	art, err := a.Source.CreateArticle(ctx, in)
	if err != nil {
		return model.Article{}, a.fail("create_article", "Creation Failed", err)
	}
	a.Stores.Knowledge.Articles.Add(art)
	a.success("Article Created", art.Title)
	return art, nil
}

func (a *App) OpenArticle(ctx context.Context, id string) (model.Article, error) {
	if err := required("article id", id); err != nil {
		return model.Article{}, err
	}
	art, err := a.Source.GetArticle(ctx, id)
	if err != nil {
		return model.Article{}, a.fail("open_article", "Load Failed", err)
	}
	a.Stores.Knowledge.SetCurrent(&art)
	return art, nil
}

// SearchArticles sets the filter and returns the matching cached articles.
// It does not fetch.
func (a *App) SearchArticles(query string, tags []string) []model.Article {
	a.Stores.Knowledge.SetSearchQuery(query)
	a.Stores.Knowledge.SetSelectedTags(tags)
	return a.Stores.Knowledge.Filtered()
}
