package i18n

import "golang.org/x/text/message"

var messagesPT = map[string]string{
	"app.name":        "DevTinder",
	"nav.feed":        "Feed",
	"nav.connections": "Conexões",
	"nav.requests":    "Solicitações",
	"nav.profile":     "Perfil",
	"nav.logout":      "Sair",
	"nav.welcome":     "Bem-vindo, %s",
	"nav.lang_en":     "EN",
	"nav.lang_pt_br":  "PT-BR",

	"title.login":       "Entrar",
	"title.signup":      "Cadastro",
	"title.feed":        "Feed",
	"title.connections": "Conexões",
	"title.requests":    "Solicitações de conexão",
	"title.profile":     "Editar perfil",
	"title.error":       "Algo deu errado",

	"auth.email":                     "E-mail",
	"auth.password":                  "Senha",
	"auth.first_name":                "Nome",
	"auth.last_name":                 "Sobrenome",
	"auth.login":                     "Entrar",
	"auth.signup":                    "Cadastrar",
	"auth.to_signup":                 "Novo por aqui? Cadastre-se",
	"auth.to_login":                  "Já tem conta? Entre aqui",
	"auth.error.missing_credentials": "Informe e-mail e senha.",
	"auth.error.missing_signup":      "Informe e-mail, senha e nome.",
	"auth.error.failed":              "Credenciais inválidas ou erro no servidor.",
	"auth.error.logout_failed":       "Não foi possível sair. Tente novamente.",
	"auth.notice.signed_out":         "Você saiu da sua conta.",
	"auth.notice.session_expired":    "Sua sessão expirou. Entre novamente.",

	"feed.loading":    "Carregando feed...",
	"feed.empty":      "Nenhum usuário novo encontrado!",
	"feed.interested": "Interessado",
	"feed.ignore":     "Ignorar",

	"connections.loading": "Carregando conexões...",
	"connections.empty":   "Nenhuma conexão encontrada",

	"requests.loading":              "Carregando solicitações...",
	"requests.empty":                "Nenhuma solicitação encontrada",
	"requests.accept":               "Aceitar",
	"requests.reject":               "Recusar",
	"requests.working":              "Processando...",
	"requests.notice.accepted":      "Conexão aceita!",
	"requests.notice.rejected":      "Conexão recusada!",
	"requests.notice.accept_failed": "Não foi possível aceitar a solicitação.",
	"requests.notice.reject_failed": "Não foi possível recusar a solicitação.",
	"requests.error.in_flight":      "Esta solicitação já está sendo analisada.",

	"profile.first_name":       "Nome",
	"profile.last_name":        "Sobrenome",
	"profile.age":              "Idade",
	"profile.gender":           "Gênero",
	"profile.gender.male":      "Masculino",
	"profile.gender.female":    "Feminino",
	"profile.gender.other":     "Outro",
	"profile.photo_url":        "URL da foto",
	"profile.about":            "Sobre",
	"profile.skills":           "Habilidades (separadas por vírgula)",
	"profile.save":             "Salvar perfil",
	"profile.preview":          "Prévia",
	"profile.notice.saved":     "Perfil atualizado com sucesso!",
	"profile.error.failed":     "Não foi possível salvar o perfil. Verifique a conexão com o servidor.",
	"profile.error.first_name": "O nome é obrigatório.",
	"profile.error.age":        "A idade deve ser um número positivo.",
	"profile.error.gender":     "O gênero deve ser masculino, feminino ou outro.",

	"card.age": "Idade: %d",

	"error.unavailable": "O serviço DevTinder está indisponível no momento.",
	"error.not_found":   "Página não encontrada.",
	"error.generic":     "Algo deu errado. Tente novamente.",
}

func init() {
	for key, value := range messagesPT {
		_ = message.SetString(portuguese, key, value)
	}
}
