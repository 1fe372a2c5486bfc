package resolver

import "github.com/saulo-duarte/quizmaster-lambda/internal/quiz"

type ResolverContainer struct {
	Resolver Resolver
	Handler  *Handler
}

func NewResolverContainer(repo quiz.QuizRepository) *ResolverContainer {
	r := New(repo)
	return &ResolverContainer{
		Resolver: r,
		Handler:  NewHandler(r),
	}
}
