package wsh

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"russiabasket-bot/config"
	matchhandlers "russiabasket-bot/internal/matchHandlers"
	parserhandlers "russiabasket-bot/internal/parserHandlers"
)

type InitResponse struct {
	Teams   int `json:"teams"`
	Matches int `json:"matches"`
}

// StartWS поднимает веб-сервер с read-only выдачей матчей и команд.
func StartWS(parser *parserhandlers.Handler, basketball *matchhandlers.Handler, cfg *config.Config, log *zap.SugaredLogger) {
	http.HandleFunc("/", withCORS(serveHealth))
	http.HandleFunc("/init", withCORS(serveInit(parser, log)))
	http.HandleFunc("/teams", withCORS(serveTeams(basketball, log)))
	http.HandleFunc("/newest", withCORS(serveMatches(basketball, true, log)))
	http.HandleFunc("/latest", withCORS(serveMatches(basketball, false, log)))

	log.Infof("Сервер запущен на %s", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

func serveHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// serveInit принудительно пересобирает команды и матчи из источника.
func serveInit(parser *parserhandlers.Handler, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := parser.ParseTeams(r.Context())
		if err != nil {
			log.Errorf("Инициализация базы не удалась: %v", err)
			http.Error(w, "Ошибка инициализации базы данных", http.StatusInternalServerError)
			return
		}
		matches, err := parser.ParseMatches(r.Context(), true)
		if err != nil {
			log.Errorf("Инициализация базы не удалась: %v", err)
			http.Error(w, "Ошибка инициализации базы данных", http.StatusInternalServerError)
			return
		}
		writeJSON(w, InitResponse{Teams: teams, Matches: matches})
	}
}

func serveTeams(basketball *matchhandlers.Handler, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := basketball.GetTeams(r.Context())
		if err != nil {
			log.Errorf("Ошибка при получении команд: %v", err)
			http.Error(w, "Команды не найдены", http.StatusNotFound)
			return
		}
		if len(teams) == 0 {
			http.Error(w, "Команды не найдены", http.StatusNotFound)
			return
		}
		writeJSON(w, teams)
	}
}

func serveMatches(basketball *matchhandlers.Handler, upcoming bool, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := basketball.GetMatches(r.Context(), upcoming, matchhandlers.DefaultLimit, nil)
		if err != nil {
			log.Errorf("Ошибка при получении матчей: %v", err)
			http.Error(w, "Матчи не найдены", http.StatusNotFound)
			return
		}
		if len(matches) == 0 {
			http.Error(w, "Матчи не найдены", http.StatusNotFound)
			return
		}
		writeJSON(w, matches)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func withCORS(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h(w, r)
	}
}
